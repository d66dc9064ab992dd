// File: config_test.go
// Title: Unit Tests for Configuration Management
// Description: Tests for TOML/YAML loading, dot-notation access, typed
//              getters with defaults, and environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	xserror "github.com/msto63/xstring/core/error"
)

const tomlContent = `
[trace]
enabled = true
level = "debug"
format = "text"

[limits]
warn_capacity = 4096
`

const yamlContent = `
trace:
  enabled: true
  level: debug
  format: text
limits:
  warn_capacity: 4096
`

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "xstring.toml", tomlContent)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v; want %v", cfg.Format(), FormatTOML)
	}
	if !cfg.GetBool("trace.enabled") {
		t.Error("trace.enabled should be true")
	}
	if cfg.GetString("trace.level") != "debug" {
		t.Errorf("trace.level = %q; want debug", cfg.GetString("trace.level"))
	}
	if cfg.GetInt("limits.warn_capacity") != 4096 {
		t.Errorf("limits.warn_capacity = %d; want 4096", cfg.GetInt("limits.warn_capacity"))
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "xstring.yaml", yamlContent)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v; want %v", cfg.Format(), FormatYAML)
	}
	if !cfg.GetBool("trace.enabled") {
		t.Error("trace.enabled should be true")
	}
	if cfg.GetString("trace.format") != "text" {
		t.Errorf("trace.format = %q; want text", cfg.GetString("trace.format"))
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if cfg.GetString("trace.level") != "debug" {
		t.Errorf("trace.level = %q; want debug", cfg.GetString("trace.level"))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !xserror.HasCode(err, xserror.CodeMissingConfig) {
		t.Errorf("error code = %v; want %v", xserror.GetCode(err), xserror.CodeMissingConfig)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("  ")
	if err == nil {
		t.Fatal("expected error for blank path")
	}
	if !xserror.HasCode(err, xserror.CodeValidationFailed) {
		t.Errorf("error code = %v; want %v", xserror.GetCode(err), xserror.CodeValidationFailed)
	}
}

func TestLoadInvalidContent(t *testing.T) {
	path := writeTempConfig(t, "broken.toml", "trace = [unclosed")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !xserror.HasCode(err, xserror.CodeInvalidConfig) {
		t.Errorf("error code = %v; want %v", xserror.GetCode(err), xserror.CodeInvalidConfig)
	}
}

func TestGetterDefaults(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q; want fallback", got)
	}
	if got := cfg.GetInt("missing.key", 42); got != 42 {
		t.Errorf("GetInt default = %d; want 42", got)
	}
	if got := cfg.GetBool("missing.key", true); got != true {
		t.Error("GetBool default should be true")
	}
}

func TestDefaultsOption(t *testing.T) {
	path := writeTempConfig(t, "xstring.toml", tomlContent)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"extra": "default-value",
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}

	if cfg.GetString("extra") != "default-value" {
		t.Errorf("extra = %q; want default-value", cfg.GetString("extra"))
	}
	// File values win over defaults
	if !cfg.GetBool("trace.enabled") {
		t.Error("file value should override defaults")
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeTempConfig(t, "xstring.toml", tomlContent)

	t.Setenv("XSTRING_TRACE_LEVEL", "trace")

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "XSTRING"})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}

	if got := cfg.GetString("trace.level"); got != "trace" {
		t.Errorf("trace.level = %q; want env override trace", got)
	}
}

func TestHasAndSet(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if !cfg.Has("trace.enabled") {
		t.Error("Has should find trace.enabled")
	}
	if cfg.Has("trace.missing") {
		t.Error("Has should not find trace.missing")
	}

	cfg.Set("trace.output", "stderr")
	if cfg.GetString("trace.output") != "stderr" {
		t.Error("Set value should be readable")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.conf", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := detectFormat(tt.path); got != tt.expected {
				t.Errorf("detectFormat(%q) = %v; want %v", tt.path, got, tt.expected)
			}
		})
	}
}
