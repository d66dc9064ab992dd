// File: doc.go
// Title: Package Documentation for errors
// Description: Package errors provides standardized error constructors for
//              the xstring library modules, built on top of core/error.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation

// Package errors provides standardized error constructors for the xstring
// library modules.
//
// Overview
//
// While core/error supplies the structured Error type, this package pins
// down how each module of the library reports its specific failures, so
// that every invalid-length rejection or aliasing violation carries the
// same code, operation naming, and detail keys regardless of where it was
// raised.
//
// Usage:
//
//	if n > MaxLen {
//	    return nil, errors.InvalidLengthError(errors.ModuleXstr, "New", n, MaxLen)
//	}
//
// Callers classify errors through core/error:
//
//	if xserror.HasCode(err, xserror.CodeInvalidLength) { ... }
//
// or through the module helpers:
//
//	if errors.IsModuleError(err, errors.ModuleXstr) { ... }
//
package errors
