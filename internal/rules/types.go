package rules

// Category identifies a hazard class. Categories are fixed at compile time
// and evaluated in a fixed order; they are not configurable.
type Category string

const (
	CategoryVersionControl Category = "version-control"
	CategoryRemoteAccess   Category = "remote-access"
	CategoryDeployment     Category = "deployment"
	CategoryFileDeletion   Category = "file-deletion"
	CategoryPrivilege      Category = "privilege-escalation"
	CategoryNetwork        Category = "network-access"
	CategoryContainer      Category = "container-exec"
	CategoryUser           Category = "user"
)

// MatchResult represents the result of classifying a command.
// A zero MatchResult means the command is allowed.
type MatchResult struct {
	Matched  bool     `json:"matched"`
	Category Category `json:"category,omitempty"`
	RuleName string   `json:"rule_name,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// Source represents the origin of a rule.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

// Rule represents a user-supplied block rule loaded from a YAML file.
// The pattern is either "re:<regexp>", "glob:<glob>", or a literal command
// token matched at word boundaries.
type Rule struct {
	Name    string `yaml:"name" json:"name"`
	Pattern string `yaml:"pattern" json:"pattern"`
	Message string `yaml:"message" json:"message"`
	Enabled *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"` // default true

	// Runtime fields
	Source   Source `yaml:"-" json:"source,omitempty"`
	FilePath string `yaml:"-" json:"file_path,omitempty"`
}

// IsEnabled returns true unless the rule is explicitly disabled.
func (r Rule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// RuleSet represents a collection of user rules from a YAML file.
type RuleSet struct {
	Version int    `yaml:"version" json:"version"`
	Rules   []Rule `yaml:"rules" json:"rules"`
}

// RuleInfo describes a single builtin detection for listing and linting.
type RuleInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Message string `json:"message"`
}

// GroupInfo describes one category group for listing.
type GroupInfo struct {
	Category Category   `json:"category"`
	Rules    []RuleInfo `json:"rules"`
}
