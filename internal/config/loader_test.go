package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, projectConfigDir, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader_ProjectOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
settings:
  log_level: debug
  default_timeout: 45
hooks:
  bash-guard:
    timeout: 90
`)

	loader, err := NewLoader(dir)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Settings.LogLevel != "debug" {
		t.Errorf("got LogLevel=%q, want debug", cfg.Settings.LogLevel)
	}
	if cfg.Settings.DefaultTimeout != 45 {
		t.Errorf("got DefaultTimeout=%d, want 45", cfg.Settings.DefaultTimeout)
	}
	if cfg.Hooks["bash-guard"].Timeout != 90 {
		t.Errorf("got hook timeout=%d, want 90", cfg.Hooks["bash-guard"].Timeout)
	}
}

func TestLoader_MissingConfigUsesDefaults(t *testing.T) {
	loader, err := NewLoader(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Settings.LogLevel != "info" {
		t.Errorf("got LogLevel=%q, want default info", cfg.Settings.LogLevel)
	}
}

func TestLoader_ConfigPaths(t *testing.T) {
	dir := t.TempDir()
	loader, err := NewLoader(dir)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := loader.ProjectConfigPath(), filepath.Join(dir, projectConfigDir, configFileName); got != want {
		t.Errorf("got project path %q, want %q", got, want)
	}
	if suffix := filepath.Join(globalConfigDir, configFileName); !strings.HasSuffix(loader.GlobalConfigPath(), suffix) {
		t.Errorf("global path %q does not end in %q", loader.GlobalConfigPath(), suffix)
	}
}

func TestLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "settings: [not: a: mapping")

	loader, err := NewLoader(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMergeConfigs(t *testing.T) {
	base := &Config{
		Version: "1",
		Settings: Settings{
			LogLevel:       "info",
			DefaultTimeout: 30,
		},
		Hooks: map[string]HookOverride{
			"a": {Timeout: 10},
			"b": {Disabled: true},
		},
	}
	override := &Config{
		Settings: Settings{
			LogLevel: "warn",
		},
		Hooks: map[string]HookOverride{
			"a": {Timeout: 99},
			"c": {Matcher: "Edit"},
		},
	}

	merged := mergeConfigs(base, override)

	if merged.Version != "1" {
		t.Errorf("got Version=%q, want base value carried", merged.Version)
	}
	if merged.Settings.LogLevel != "warn" {
		t.Errorf("got LogLevel=%q, want override warn", merged.Settings.LogLevel)
	}
	if merged.Settings.DefaultTimeout != 30 {
		t.Errorf("got DefaultTimeout=%d, want base 30", merged.Settings.DefaultTimeout)
	}
	if merged.Hooks["a"].Timeout != 99 {
		t.Errorf("override for hook a not applied: %+v", merged.Hooks["a"])
	}
	if !merged.Hooks["b"].Disabled {
		t.Error("base-only hook b lost")
	}
	if merged.Hooks["c"].Matcher != "Edit" {
		t.Error("override-only hook c lost")
	}
}
