// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured, leveled logging for the
//              xstring library with JSON, text, and console output formats.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation

// Package log provides structured, leveled logging for the xstring library.
//
// Overview
//
// The log package implements a structured logger with levels (trace through
// fatal), custom key-value fields, multiple output formats, and integration
// with the core/error structured errors. Within xstring it backs the
// optional trace instrumentation of the string value type: when installed,
// the value type reports tier transitions, copy-on-write materializations,
// and concatenation path choices at debug level.
//
// The logger never participates in the semantics of the string operations;
// it can be left entirely uninstalled, which is the default.
//
// Usage Examples
//
// Basic logging:
//
//	logger := log.New().WithName("xstr").WithLevel(log.LevelDebug)
//	logger.Debug("allocated buffer", log.Fields{"tier": "large", "capacity": 511})
//
// Configured logging:
//
//	logger := log.NewWithConfig(log.Config{
//	    Level:  log.LevelDebug,
//	    Format: log.FormatConsole,
//	    Output: os.Stderr,
//	    Name:   "xstr",
//	})
//
// Logging structured errors:
//
//	if err := doWork(); err != nil {
//	    logger.LogError(err) // level chosen from the error's severity
//	}
//
// Thread Safety
//
// Logger methods are safe for concurrent use. The WithX builders return
// clones, so derived loggers never mutate their parent.
//
// See Also
//
//   - Package error: Structured errors consumed by LogError
//
package log
