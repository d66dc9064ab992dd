// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages including JSON, text,
//              and console formats. Provides formatters for different output
//              destinations and use cases.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with multiple output formats

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs (recommended for production)
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored console logs for development
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatJSON, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// PrettyPrint enables indented JSON output
	PrettyPrint bool

	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint:     false,
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{})

	// Standard fields
	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}

	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d (%s)", entry.Caller.File, entry.Caller.Line, entry.Caller.Function)
	}

	// Custom fields
	for k, v := range entry.Fields {
		data[k] = v
	}

	var result []byte
	var err error
	if f.PrettyPrint {
		result, err = json.MarshalIndent(data, "", "  ")
	} else {
		result, err = json.Marshal(data)
	}
	if err != nil {
		return nil, err
	}

	return append(result, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var builder strings.Builder

	builder.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	builder.WriteString(" [")
	builder.WriteString(entry.Level.ShortString())
	builder.WriteString("] ")

	if entry.Logger != "" {
		builder.WriteString(entry.Logger)
		builder.WriteString(": ")
	}

	builder.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		builder.WriteString(" {")
		builder.WriteString(formatFields(entry.Fields))
		builder.WriteString("}")
	}

	if entry.Error != nil {
		builder.WriteString(" error=")
		builder.WriteString(entry.Error.Error())
	}

	if entry.Caller != nil {
		builder.WriteString(fmt.Sprintf(" (%s:%d)", entry.Caller.File, entry.Caller.Line))
	}

	builder.WriteString("\n")

	return []byte(builder.String()), nil
}

// ConsoleFormatter formats log entries with ANSI colors for development
type ConsoleFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		TimestampFormat: "15:04:05.000",
	}
}

// Format formats a log entry with colors for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var builder strings.Builder

	builder.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	builder.WriteString(" ")
	builder.WriteString(entry.Level.Color())
	builder.WriteString(entry.Level.ShortString())
	builder.WriteString("\033[0m ")

	if entry.Logger != "" {
		builder.WriteString(entry.Logger)
		builder.WriteString(": ")
	}

	builder.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		builder.WriteString(" \033[90m{")
		builder.WriteString(formatFields(entry.Fields))
		builder.WriteString("}\033[0m")
	}

	if entry.Error != nil {
		builder.WriteString(" \033[31merror=")
		builder.WriteString(entry.Error.Error())
		builder.WriteString("\033[0m")
	}

	builder.WriteString("\n")

	return []byte(builder.String()), nil
}

// formatFields renders fields as sorted key=value pairs for stable output
func formatFields(fields Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(pairs, ", ")
}
