// File: standards.go
// Title: Error Standards for the xstring Library
// Description: Provides standardized error constructors and codes for all
//              xstring modules to ensure consistent error reporting across
//              the value type, tier math, and configuration packages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"

	xserror "github.com/msto63/xstring/core/error"
)

// Module identifiers for error categorization
const (
	ModuleXstr   = "xstr"
	ModuleMathx  = "mathx"
	ModuleConfig = "config"
)

// InvalidLengthError creates the standardized error for a length that
// exceeds the maximum representable string length
func InvalidLengthError(module, operation string, length, max int) *xserror.Error {
	return xserror.New(fmt.Sprintf("%s.%s: length %d exceeds maximum representable length %d", module, operation, length, max)).
		WithCode(xserror.CodeInvalidLength).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"length":    length,
			"max":       max,
		})
}

// NegativeLengthError creates the standardized error for a negative length
func NegativeLengthError(module, operation string, length int) *xserror.Error {
	return xserror.New(fmt.Sprintf("%s.%s: length %d is negative", module, operation, length)).
		WithCode(xserror.CodeValueOutOfRange).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"length":    length,
		})
}

// AliasingError creates the standardized error for an operation whose
// inputs overlap the storage of the value being mutated
func AliasingError(module, operation string) *xserror.Error {
	return xserror.New(fmt.Sprintf("%s.%s: input aliases the target's buffer", module, operation)).
		WithCode(xserror.CodeAliasingViolation).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		})
}

// AllocationError creates the standardized error for a failed buffer
// allocation
func AllocationError(module, operation string, capacity int, cause error) *xserror.Error {
	message := fmt.Sprintf("%s.%s: failed to allocate buffer of capacity %d", module, operation, capacity)
	if cause != nil {
		return xserror.Wrap(cause, message).
			WithCode(xserror.CodeAllocationFailure).
			WithOperation(fmt.Sprintf("%s.%s", module, operation)).
			WithDetail("capacity", capacity)
	}
	return xserror.New(message).
		WithCode(xserror.CodeAllocationFailure).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetail("capacity", capacity)
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *xserror.Error {
	return xserror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(xserror.CodeInvalidInput).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// ValidationError creates a standardized validation error for a field
// that failed a consistency check
func ValidationError(module, operation, field, reason string) *xserror.Error {
	return xserror.New(fmt.Sprintf("%s.%s: validation failed for %s: %s", module, operation, field, reason)).
		WithCode(xserror.CodeValidationFailed).
		WithOperation(fmt.Sprintf("%s.%s", module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"field":     field,
			"reason":    reason,
		})
}

// ConfigError creates a standardized configuration error
func ConfigError(operation string, cause error, details map[string]interface{}) *xserror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = ModuleConfig
	details["operation"] = operation

	if cause != nil {
		return xserror.Wrap(cause, fmt.Sprintf("config.%s failed", operation)).
			WithCode(xserror.CodeConfigError).
			WithOperation(fmt.Sprintf("config.%s", operation)).
			WithDetails(details)
	}
	return xserror.New(fmt.Sprintf("config.%s failed", operation)).
		WithCode(xserror.CodeConfigError).
		WithOperation(fmt.Sprintf("config.%s", operation)).
		WithDetails(details)
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if xsErr, ok := err.(*xserror.Error); ok {
		if details := xsErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				return mod == module
			}
		}
	}
	return false
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if xsErr, ok := err.(*xserror.Error); ok {
		if details := xsErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				if modStr, ok := mod.(string); ok {
					return modStr
				}
			}
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if xsErr, ok := err.(*xserror.Error); ok {
		if details := xsErr.Details(); details != nil {
			if op, exists := details["operation"]; exists {
				if opStr, ok := op.(string); ok {
					return opStr
				}
			}
		}
	}
	return ""
}
