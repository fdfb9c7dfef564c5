package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/AutoGuard/autoguard/internal/types"
)

// envOverrides are applied on top of the file config. Pointer fields
// distinguish "unset" from an explicit zero value.
type envOverrides struct {
	LogLevel     string `envconfig:"LOG_LEVEL"`
	NoColor      *bool  `envconfig:"NO_COLOR"`
	RulesDir     string `envconfig:"RULES_DIR"`
	SettingsPath string `envconfig:"SETTINGS_PATH"`
}

// envPrefix namespaces every override variable, e.g. AUTOGUARD_LOG_LEVEL.
const envPrefix = "autoguard"

// ApplyEnv overlays AUTOGUARD_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if env.LogLevel != "" {
		cfg.Hook.LogLevel = types.LogLevel(env.LogLevel)
	}
	if env.NoColor != nil {
		cfg.Hook.NoColor = *env.NoColor
	}
	if env.RulesDir != "" {
		cfg.Rules.UserDir = env.RulesDir
	}
	if env.SettingsPath != "" {
		cfg.Settings.Path = env.SettingsPath
	}
	return nil
}

// PathFromEnv returns the config file path, honoring AUTOGUARD_CONFIG.
func PathFromEnv() string {
	if p := os.Getenv("AUTOGUARD_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath()
}
