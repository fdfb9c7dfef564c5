package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AutoGuard/autoguard/internal/config"
	"github.com/AutoGuard/autoguard/internal/types"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("AUTOGUARD_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("AUTOGUARD_LOG_LEVEL", "")

	cfg := loadConfig()
	if cfg.Hook.LogLevel != types.LogLevelWarn {
		t.Errorf("Expected default log level, got %q", cfg.Hook.LogLevel)
	}
}

func TestLoadConfig_BrokenFileDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("hook: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AUTOGUARD_CONFIG", path)

	cfg := loadConfig()
	if cfg.Hook.LogLevel != types.LogLevelWarn {
		t.Errorf("Expected defaults for broken config, got %+v", cfg)
	}
}

func TestBuildEngine(t *testing.T) {
	dir := t.TempDir()
	rulesFile := `version: 1
rules:
  - name: block-terraform
    pattern: "re:\\bterraform\\s+apply\\b"
    message: "terraform apply is blocked."
`
	if err := os.WriteFile(filepath.Join(dir, "infra.yaml"), []byte(rulesFile), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Rules.UserDir = dir

	engine := buildEngine(cfg)
	if n := len(engine.UserRules()); n != 1 {
		t.Errorf("Expected 1 user rule, got %d", n)
	}
	if res := engine.Classify("terraform apply"); !res.Matched {
		t.Error("Expected user rule to apply")
	}

	cfg.Rules.DisableUser = true
	engine = buildEngine(cfg)
	if n := len(engine.UserRules()); n != 0 {
		t.Errorf("Expected no user rules when disabled, got %d", n)
	}
	if res := engine.Classify("git push"); !res.Matched {
		t.Error("Builtin groups must stay active with user rules disabled")
	}
}
