// File: trace.go
// Title: Trace Instrumentation and Configuration
// Description: Implements the optional trace logging of the string value
//              type and its wiring to the configuration system. Tracing
//              is off by default and never alters operation semantics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with config-driven tracing

package xstr

import (
	"io"
	"os"

	"github.com/msto63/xstring/core/config"
	xserrors "github.com/msto63/xstring/core/errors"
	"github.com/msto63/xstring/core/log"
)

// traceLogger receives allocation and mutation events when installed.
// nil disables tracing entirely, which is the default.
var traceLogger *log.Logger

// SetTraceLogger installs a logger for allocation and mutation tracing.
// Passing nil disables tracing.
func SetTraceLogger(l *log.Logger) {
	traceLogger = l
}

// tracef reports an instrumentation event to the trace logger, if any.
func tracef(message string, fields ...log.Fields) {
	if traceLogger != nil {
		traceLogger.Debug(message, fields...)
	}
}

// Options bundles the instrumentation switches of the package.
type Options struct {
	// TraceEnabled installs a trace logger when true.
	TraceEnabled bool

	// TraceLevel is the minimum level of the installed logger.
	TraceLevel log.Level

	// TraceFormat selects the output format of the installed logger.
	TraceFormat log.Format

	// TraceOutput is the destination of trace output; defaults to stderr.
	TraceOutput io.Writer
}

// DefaultOptions returns the default instrumentation options: tracing
// disabled, debug level, text format, stderr output.
func DefaultOptions() Options {
	return Options{
		TraceEnabled: false,
		TraceLevel:   log.LevelDebug,
		TraceFormat:  log.FormatText,
		TraceOutput:  os.Stderr,
	}
}

// OptionsFromConfig reads the trace.* keys from a loaded configuration:
// trace.enabled (bool), trace.level and trace.format (strings parsed by
// the log package). Missing keys keep their defaults.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()

	opts.TraceEnabled = cfg.GetBool("trace.enabled", opts.TraceEnabled)

	if s := cfg.GetString("trace.level"); s != "" {
		level, err := log.ParseLevel(s)
		if err != nil {
			return opts, xserrors.ConfigError("OptionsFromConfig", err,
				map[string]interface{}{"key": "trace.level", "value": s})
		}
		opts.TraceLevel = level
	}

	if s := cfg.GetString("trace.format"); s != "" {
		format, err := log.ParseFormat(s)
		if err != nil {
			return opts, xserrors.ConfigError("OptionsFromConfig", err,
				map[string]interface{}{"key": "trace.format", "value": s})
		}
		opts.TraceFormat = format
	}

	return opts, nil
}

// Apply installs or removes the trace logger according to the options.
func (o Options) Apply() {
	if !o.TraceEnabled {
		SetTraceLogger(nil)
		return
	}

	output := o.TraceOutput
	if output == nil {
		output = os.Stderr
	}

	SetTraceLogger(log.NewWithConfig(log.Config{
		Level:  o.TraceLevel,
		Format: o.TraceFormat,
		Output: output,
		Name:   "xstr",
	}))
}

// ConfigureFromFile loads instrumentation options from a TOML or YAML
// file and applies them.
func ConfigureFromFile(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	opts.Apply()
	return nil
}
