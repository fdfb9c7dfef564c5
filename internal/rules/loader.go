package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads user rule files from a directory. The builtin category groups
// are native Go tables and never come from files; user files can only add
// rules that run after every builtin group.
type Loader struct {
	userDir string
}

// NewLoader creates a new rule loader.
func NewLoader(userDir string) *Loader {
	return &Loader{userDir: userDir}
}

// DefaultUserRulesDir returns the default user rules directory.
func DefaultUserRulesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".autoguard/rules.d"
	}
	return filepath.Join(home, ".autoguard", "rules.d")
}

// LoadUser loads rules from the user rules directory. A missing directory is
// not an error; unreadable or unparsable files are skipped with a warning so
// one bad file never takes the hook offline.
func (l *Loader) LoadUser() ([]Rule, error) {
	if l.userDir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(l.userDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read rules directory: %w", err)
	}

	var allRules []Rule

	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}

		path := filepath.Join(l.userDir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Failed to read rule file %s: %v", path, err)
			continue
		}

		rules, err := parseRuleSet(data, path)
		if err != nil {
			log.Warn("Failed to parse rule file %s: %v", path, err)
			continue
		}

		allRules = append(allRules, rules...)
	}

	log.Debug("loaded %d user rules from %s", len(allRules), l.userDir)
	return allRules, nil
}

// LoadFile loads rules from a single YAML file. Unlike LoadUser, parse errors
// are returned, not swallowed; this is the path `lint-rules <file>` uses.
func (l *Loader) LoadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseRuleSet(data, path)
}

// parseRuleSet parses YAML rule data and stamps runtime fields.
func parseRuleSet(data []byte, filePath string) ([]Rule, error) {
	var set RuleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if set.Version != 0 && set.Version != 1 {
		return nil, fmt.Errorf("unsupported rule set version %d", set.Version)
	}

	rules := set.Rules
	for i := range rules {
		rules[i].Source = SourceUser
		rules[i].FilePath = filePath
	}
	return rules, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
