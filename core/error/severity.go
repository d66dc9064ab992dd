// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging. Severity levels classify how
//              badly a failure compromises the string value's contract.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid caller input, out-of-bound construction lengths
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: configuration problems, rejected operations
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: aliasing precondition violations, double release of a buffer
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: heap exhaustion during allocation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical memory errors
	case CodeAllocationFailure:
		return SeverityCritical

	// High severity contract violations
	case CodeAliasingViolation, CodeDoubleRelease, CodeInternal:
		return SeverityHigh

	// Medium severity configuration problems
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Low severity input problems
	case CodeInvalidLength, CodeValueOutOfRange, CodeInvalidInput,
		CodeValidationFailed, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
