package cli

import (
	"os"

	"github.com/hookline/hookline/internal/builtin"
	"github.com/hookline/hookline/internal/config"
	"github.com/hookline/hookline/internal/logger"
	"github.com/hookline/hookline/internal/registry"
	"github.com/hookline/hookline/internal/settings"
)

// loadConfig loads the tool configuration and initializes logging from it.
// Missing configuration is not an error; defaults apply.
func loadConfig() *config.Config {
	var cfg *config.Config

	loader, err := config.NewLoader(projectDir)
	if err == nil {
		if configFile != "" {
			cfg, err = loader.LoadFromFile(configFile)
		} else {
			cfg, err = loader.Load()
		}
	}
	if err != nil || cfg == nil {
		cfg = config.DefaultConfig()
	}

	if verbose {
		_ = logger.Init("debug", cfg.Settings.LogFile)
	} else if cfg.Settings.LogLevel != "" {
		_ = logger.Init(cfg.Settings.LogLevel, cfg.Settings.LogFile)
	} else {
		logger.InitQuiet()
	}

	if loader != nil && configFile == "" {
		logger.Debug().
			Str("global", loader.GlobalConfigPath()).
			Str("project", loader.ProjectConfigPath()).
			Msg("Config files consulted")
	}

	return cfg
}

// buildRegistry scans the bundled hook source under the given policy. The
// registry and report are returned even when the scan reports name
// conflicts, so callers can decide whether conflicts are fatal.
func buildRegistry(opts registry.ScanOptions) (*registry.Registry, *registry.ScanReport, error) {
	reg := registry.New()
	report, err := reg.ScanAndRegister(builtin.Source(), opts)
	return reg, report, err
}

// settingsPath resolves the host settings file location: explicit flag, then
// tool config, then the project default.
func settingsPath(flagPath string, cfg *config.Config) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg.Settings.SettingsPath != "" {
		return cfg.Settings.SettingsPath
	}
	dir := projectDir
	if dir == "" {
		if cwd, err := os.Getwd(); err == nil {
			dir = cwd
		}
	}
	return settings.DefaultPath(dir)
}
