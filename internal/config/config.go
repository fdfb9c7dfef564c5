// Package config loads and validates the guard configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AutoGuard/autoguard/internal/logger"
	"github.com/AutoGuard/autoguard/internal/types"
)

var cfgLog = logger.New("config")

// Config represents the autoguard configuration.
type Config struct {
	Hook     HookConfig     `yaml:"hook"`
	Rules    RulesConfig    `yaml:"rules"`
	Settings SettingsConfig `yaml:"settings"`
}

// HookConfig holds settings for the hook process itself.
type HookConfig struct {
	LogLevel types.LogLevel `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	NoColor  bool           `yaml:"no_color"`
}

// RulesConfig holds rule engine settings.
type RulesConfig struct {
	// UserDir is the directory of user rule files (default: ~/.autoguard/rules.d)
	UserDir string `yaml:"user_dir"`
	// DisableUser skips loading user rule files; builtin groups always run
	DisableUser bool `yaml:"disable_user"`
}

// SettingsConfig holds settings for agent settings-file management.
type SettingsConfig struct {
	// Path is the agent settings file install/uninstall manage
	// (default: .claude/settings.local.json in the working directory)
	Path string `yaml:"path"`
}

// DefaultConfigPath returns the default config file path (~/.autoguard/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".autoguard", "config.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Hook: HookConfig{
			LogLevel: types.LogLevelWarn,
			NoColor:  false,
		},
		Rules: RulesConfig{
			UserDir:     "", // empty means use default ~/.autoguard/rules.d
			DisableUser: false,
		},
		Settings: SettingsConfig{
			Path: "", // empty means .claude/settings.local.json
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks all Config fields and returns a multi-error report.
// Call this AFTER env overrides have been applied, not during Load().
func (c *Config) Validate() error {
	var errs []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Sprintf("%s: failed %q validation (got %v)", fieldPath(fe), fe.Tag(), fe.Value()))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for i, e := range errs {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, e)
	}
	return errors.New(sb.String())
}

// fieldPath renders a validator namespace like "Config.Hook.LogLevel" as the
// yaml-ish "hook.log_level" users actually write.
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = toSnake(p)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// isUnknownFieldError returns true if the error is from yaml.Decoder.KnownFields(true)
// detecting an unrecognized key (e.g. typo like "hok:").
func isUnknownFieldError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found in type")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Load does NOT call Validate(); callers apply env overrides
// first, then call cfg.Validate() themselves.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// Strict decode first to warn about unknown fields, then fall back to a
	// lenient parse so a config from a newer version still loads.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if isUnknownFieldError(err) {
			cfgLog.Warn("config has unknown fields (ignored): %v", err)
			cfg = DefaultConfig()
			if err2 := yaml.Unmarshal(data, cfg); err2 != nil {
				return nil, fmt.Errorf("config parse error: %w", err2)
			}
		} else {
			return nil, fmt.Errorf("config parse error: %w", err)
		}
	}

	return cfg, nil
}
