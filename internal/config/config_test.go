package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Version != "1" {
		t.Errorf("got Version=%q, want \"1\"", cfg.Version)
	}
	if cfg.Settings.LogLevel != "info" {
		t.Errorf("got LogLevel=%q, want \"info\"", cfg.Settings.LogLevel)
	}
}

func TestConfig_Overrides(t *testing.T) {
	cfg := &Config{
		Hooks: map[string]HookOverride{
			"bash-guard": {Matcher: "Bash|Write", Timeout: 60},
			"noisy":      {Disabled: true},
		},
	}

	ov := cfg.Overrides()
	if len(ov) != 2 {
		t.Fatalf("got %d overrides, want 2", len(ov))
	}
	if ov["bash-guard"].Matcher != "Bash|Write" || ov["bash-guard"].Timeout != 60 {
		t.Errorf("bash-guard override wrong: %+v", ov["bash-guard"])
	}
	if !ov["noisy"].Disabled {
		t.Error("disabled flag lost")
	}
}

func TestConfig_OverridesEmpty(t *testing.T) {
	if ov := DefaultConfig().Overrides(); ov != nil {
		t.Errorf("expected nil for no overrides, got %v", ov)
	}
}
