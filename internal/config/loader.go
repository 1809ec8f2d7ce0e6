package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	globalConfigDir  = ".hookline"
	projectConfigDir = ".hookline"
	configFileName   = "config.yaml"
)

// Loader handles loading and merging configuration files.
type Loader struct {
	globalPath  string
	projectPath string
}

// NewLoader creates a new configuration loader.
func NewLoader(projectDir string) (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	if projectDir == "" {
		projectDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	return &Loader{
		globalPath:  filepath.Join(homeDir, globalConfigDir, configFileName),
		projectPath: filepath.Join(projectDir, projectConfigDir, configFileName),
	}, nil
}

// Load loads and merges configuration from all sources. Project settings
// override global settings, which override the defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	globalCfg, err := l.loadFile(l.globalPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}
	if globalCfg != nil {
		cfg = mergeConfigs(cfg, globalCfg)
	}

	projectCfg, err := l.loadFile(l.projectPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	if projectCfg != nil {
		cfg = mergeConfigs(cfg, projectCfg)
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	return l.loadFile(path)
}

func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// mergeConfigs merges two configurations, with override taking precedence.
func mergeConfigs(base, override *Config) *Config {
	result := &Config{
		Version: coalesce(override.Version, base.Version),
		Settings: Settings{
			LogLevel:     coalesce(override.Settings.LogLevel, base.Settings.LogLevel),
			LogFile:      coalesce(override.Settings.LogFile, base.Settings.LogFile),
			SettingsPath: coalesce(override.Settings.SettingsPath, base.Settings.SettingsPath),
		},
		Hooks: mergeOverrides(base.Hooks, override.Hooks),
	}

	result.Settings.DefaultTimeout = base.Settings.DefaultTimeout
	if override.Settings.DefaultTimeout > 0 {
		result.Settings.DefaultTimeout = override.Settings.DefaultTimeout
	}

	return result
}

// mergeOverrides combines per-hook overrides; entries under the same hook
// name are replaced, new entries are added.
func mergeOverrides(base, override map[string]HookOverride) map[string]HookOverride {
	if len(override) == 0 {
		return base
	}
	if len(base) == 0 {
		return override
	}

	result := make(map[string]HookOverride, len(base)+len(override))
	for name, ov := range base {
		result[name] = ov
	}
	for name, ov := range override {
		result[name] = ov
	}
	return result
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// GlobalConfigPath returns the path to the global config file.
func (l *Loader) GlobalConfigPath() string {
	return l.globalPath
}

// ProjectConfigPath returns the path to the project config file.
func (l *Loader) ProjectConfigPath() string {
	return l.projectPath
}
