// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the xstring library. These codes enable
//              structured error handling and precise failure reporting for
//              the string value type and its supporting packages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the xstring library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// String value contract violations
	CodeInvalidLength     Code = "INVALID_LENGTH"
	CodeValueOutOfRange   Code = "VALUE_OUT_OF_RANGE"
	CodeAliasingViolation Code = "ALIASING_VIOLATION"

	// Memory and allocation
	CodeAllocationFailure Code = "ALLOCATION_FAILURE"
	CodeDoubleRelease     Code = "DOUBLE_RELEASE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeInvalidLength, CodeValueOutOfRange, CodeAliasingViolation,
		CodeAllocationFailure, CodeDoubleRelease,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidLength, CodeValueOutOfRange, CodeAliasingViolation:
		return "contract"
	case CodeAllocationFailure, CodeDoubleRelease:
		return "memory"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}

// IsRecoverable returns true if callers can reasonably continue after
// observing an error carrying this code
func (c Code) IsRecoverable() bool {
	switch c {
	case CodeAllocationFailure, CodeDoubleRelease, CodeInternal:
		return false
	default:
		return true
	}
}
