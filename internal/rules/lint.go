package rules

import (
	"fmt"
	"strings"
)

// LintSeverity represents the severity of a lint issue.
type LintSeverity string

// Lint severity levels.
const (
	LintError   LintSeverity = "error"
	LintWarning LintSeverity = "warning"
)

// LintIssue represents a problem found in a user rule.
type LintIssue struct {
	RuleName string
	Field    string
	Severity LintSeverity
	Message  string
}

// LintResult contains all issues found during linting.
type LintResult struct {
	Issues []LintIssue
	Errors int
	Warns  int
}

// Linter validates user rules for common mistakes.
type Linter struct{}

// NewLinter creates a new rule linter.
func NewLinter() *Linter {
	return &Linter{}
}

// LintRules validates a list of user rules and returns all issues found.
func (l *Linter) LintRules(rules []Rule) LintResult {
	result := LintResult{}
	seenNames := make(map[string]bool)

	for _, rule := range rules {
		if rule.Name != "" && seenNames[rule.Name] {
			result.addIssue(LintIssue{
				RuleName: rule.Name,
				Field:    "name",
				Severity: LintError,
				Message:  "duplicate rule name",
			})
		}
		seenNames[rule.Name] = true

		for _, issue := range lintRule(rule) {
			result.addIssue(issue)
		}
	}

	return result
}

// LintFile lints the rules in a single YAML file.
func (l *Linter) LintFile(path string) (LintResult, error) {
	loader := NewLoader("")
	rules, err := loader.LoadFile(path)
	if err != nil {
		return LintResult{}, err
	}
	return l.LintRules(rules), nil
}

func lintRule(rule Rule) []LintIssue {
	var issues []LintIssue
	name := rule.Name
	if name == "" {
		name = "(unnamed)"
	}

	// compileUserRule performs the full pattern validation; linting reuses it
	// so lint verdicts and engine acceptance can never disagree.
	if _, err := compileUserRule(rule); err != nil {
		issues = append(issues, LintIssue{
			RuleName: name,
			Field:    "pattern",
			Severity: LintError,
			Message:  err.Error(),
		})
	}

	if rule.Message != "" && !strings.HasSuffix(rule.Message, ".") {
		issues = append(issues, LintIssue{
			RuleName: name,
			Field:    "message",
			Severity: LintWarning,
			Message:  "message should end with a period for consistency with builtin reasons",
		})
	}

	return issues
}

func (r *LintResult) addIssue(issue LintIssue) {
	r.Issues = append(r.Issues, issue)
	switch issue.Severity {
	case LintError:
		r.Errors++
	case LintWarning:
		r.Warns++
	}
}

// FormatIssues renders the lint result as a human-readable report.
func (r *LintResult) FormatIssues() string {
	if len(r.Issues) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, issue := range r.Issues {
		fmt.Fprintf(&sb, "%-7s %s (%s): %s\n", issue.Severity, issue.RuleName, issue.Field, issue.Message)
	}
	return sb.String()
}
