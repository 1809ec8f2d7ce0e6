package config

import "github.com/hookline/hookline/internal/settings"

// Config is the hookline tool configuration. It governs how the tool itself
// behaves; the hooks it advertises live in the host settings file, which the
// reconciler owns.
type Config struct {
	Version  string                  `yaml:"version"`
	Settings Settings                `yaml:"settings"`
	Hooks    map[string]HookOverride `yaml:"hooks,omitempty"`
}

// Settings contains global tool settings.
type Settings struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`

	// SettingsPath overrides the host settings file location. Empty means
	// .claude/settings.json under the project directory.
	SettingsPath string `yaml:"settings_path,omitempty"`

	// DefaultTimeout is advertised for hooks that do not declare their own,
	// in seconds.
	DefaultTimeout int `yaml:"default_timeout,omitempty"`
}

// HookOverride adjusts how a registered hook is advertised, keyed by hook
// name.
type HookOverride struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Matcher  string `yaml:"matcher,omitempty"`
	Timeout  int    `yaml:"timeout,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Settings: Settings{
			LogLevel: "info",
		},
	}
}

// Overrides lowers the per-hook overrides to the reconciler's vocabulary.
func (c *Config) Overrides() map[string]settings.Override {
	if len(c.Hooks) == 0 {
		return nil
	}
	out := make(map[string]settings.Override, len(c.Hooks))
	for name, ov := range c.Hooks {
		out[name] = settings.Override{
			Disabled: ov.Disabled,
			Matcher:  ov.Matcher,
			Timeout:  ov.Timeout,
		}
	}
	return out
}
