// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured error handling for the
//              xstring library with error codes, severity levels, and
//              stack traces.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation

// Package error provides structured error handling for the xstring library.
//
// Overview
//
// The error package extends Go's standard error handling with structured
// error codes, severity levels, contextual details, and stack traces. It
// exists so that the string value type can report contract violations
// (invalid lengths, aliasing hazards) and resource failures in a form that
// callers can classify programmatically instead of matching message text.
//
// Key capabilities include:
//   - Structured error codes for the library's failure taxonomy
//   - Severity levels for prioritization and logging
//   - Fluent builder API for adding context (WithCode, WithDetail, ...)
//   - Error wrapping compatible with errors.Is/errors.As/errors.Unwrap
//   - Stack trace capture with bounded depth
//   - JSON serialization for structured logging
//
// Error Codes
//
// The code taxonomy mirrors the failure modes of the string value type:
//
//	CodeInvalidLength      a requested or constructed length exceeds the
//	                       maximum representable bound (recoverable)
//	CodeAllocationFailure  heap exhaustion (fatal in practice)
//	CodeAliasingViolation  overlapping-storage precondition violation
//	CodeDoubleRelease      a buffer's ownership was given up twice
//
// plus generic, configuration, and validation codes used by the supporting
// packages.
//
// Usage Examples
//
// Creating and classifying errors:
//
//	err := error.New("length exceeds maximum").
//	    WithCode(error.CodeInvalidLength).
//	    WithOperation("xstr.New").
//	    WithDetail("length", n)
//
//	if error.HasCode(err, error.CodeInvalidLength) {
//	    // reject the input, the value is untouched
//	}
//
// Wrapping errors:
//
//	if err := loadTunables(path); err != nil {
//	    return error.Wrap(err, "failed to load tunables").
//	        WithCode(error.CodeConfigError)
//	}
//
// Thread Safety
//
// Error values are not safe for concurrent mutation through the WithX
// builders; build an error completely before sharing it. Reading a
// completed error from multiple goroutines is safe.
//
// See Also
//
//   - Package errors: Standardized error constructors per library module
//   - Package log: Severity-aware logging of structured errors
//
package error
