// File: doc.go
// Title: Package Documentation for config
// Description: Package config provides TOML and YAML configuration loading
//              with environment variable overrides for the xstring library.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation

// Package config provides configuration loading for the xstring library.
//
// Overview
//
// The config package reads TOML and YAML files into a thread-safe Config
// with dot-notation key access, typed getters with defaults, and optional
// environment variable overrides. The library itself has no mandatory
// configuration; the package exists so that hosts can switch on the string
// value type's trace instrumentation (see xstr.ConfigureFromFile) without
// recompiling.
//
// Usage Examples
//
// Loading a file (format auto-detected from the extension):
//
//	cfg, err := config.Load("xstring.toml")
//	if err != nil {
//	    return err
//	}
//	enabled := cfg.GetBool("trace.enabled", false)
//	level := cfg.GetString("trace.level", "debug")
//
// Environment overrides (key trace.enabled becomes XSTRING_TRACE_ENABLED):
//
//	cfg, err := config.LoadWithOptions("xstring.yaml", config.LoadOptions{
//	    EnvPrefix: "XSTRING",
//	})
//
// Thread Safety
//
// All accessors are safe for concurrent use.
//
// See Also
//
//   - Package xstr: ConfigureFromFile consumes the trace.* keys
//
package config
