// File: logger_test.go
// Title: Unit Tests for Core Logger
// Description: Tests for the Logger type covering level filtering, field
//              handling, output formats, and error integration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	xserror "github.com/msto63/xstring/core/error"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug below info", LevelInfo, LevelDebug, false},
		{"info at info", LevelInfo, LevelInfo, true},
		{"error above info", LevelInfo, LevelError, true},
		{"trace at trace", LevelTrace, LevelTrace, true},
		{"debug below error", LevelError, LevelDebug, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.minLevel, FormatText)
			logger.log(tt.logLevel, "message", nil)

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("logged = %v; want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatJSON)
	logger.Debug("buffer allocated", Fields{"tier": "large", "capacity": 511})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if data["level"] != "debug" {
		t.Errorf("level = %v; want debug", data["level"])
	}
	if data["message"] != "buffer allocated" {
		t.Errorf("message = %v; want %q", data["message"], "buffer allocated")
	}
	if data["tier"] != "large" {
		t.Errorf("tier field = %v; want large", data["tier"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v; want test", data["logger"])
	}
}

func TestTextOutput(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatText)
	logger.Info("hello", Fields{"key": "value"})

	out := buf.String()
	for _, want := range []string{"[INF]", "test:", "hello", "key=value"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestWithFieldPersistence(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatJSON)
	derived := logger.WithField("component", "trim")

	derived.Info("first")
	derived.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, `"component":"trim"`) {
			t.Errorf("persistent field missing from %s", line)
		}
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatJSON)
	_ = logger.WithField("component", "trim")

	logger.Info("parent message")

	if strings.Contains(buf.String(), "component") {
		t.Error("parent logger should not carry the child's fields")
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name      string
		severity  xserror.Severity
		wantLevel string
	}{
		{"low severity logs info", xserror.SeverityLow, "info"},
		{"medium severity logs warn", xserror.SeverityMedium, "warn"},
		{"high severity logs error", xserror.SeverityHigh, "error"},
		{"critical severity logs error", xserror.SeverityCritical, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(LevelTrace, FormatJSON)
			err := xserror.New("boom").WithSeverity(tt.severity).WithCode(xserror.CodeInternal)
			logger.LogError(err)

			var data map[string]interface{}
			if jsonErr := json.Unmarshal(buf.Bytes(), &data); jsonErr != nil {
				t.Fatalf("invalid JSON: %v", jsonErr)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v; want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("nil error should not be logged")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"trc", LevelTrace, false},
		{"bogus", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"text", FormatText, false},
		{"console", FormatConsole, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			}
			if format != tt.expected {
				t.Errorf("ParseFormat(%q) = %v; want %v", tt.input, format, tt.expected)
			}
		})
	}
}

func TestFieldsMerge(t *testing.T) {
	a := Fields{"x": 1, "y": 2}
	b := Fields{"y": 3, "z": 4}
	merged := a.Merge(b)

	if merged["x"] != 1 || merged["y"] != 3 || merged["z"] != 4 {
		t.Errorf("Merge result incorrect: %v", merged)
	}
	if a["y"] != 2 {
		t.Error("Merge must not mutate the receiver")
	}
}

func TestCallerInfo(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatText)
	logger.WithCaller(0).Info("with caller")

	if !strings.Contains(buf.String(), "logger_test.go") {
		t.Errorf("expected caller file in output: %s", buf.String())
	}
}
