package rules

import (
	"strings"
	"testing"
)

func TestLinter_CleanRules(t *testing.T) {
	l := NewLinter()

	result := l.LintRules([]Rule{
		{Name: "block-terraform", Pattern: `re:\bterraform\s+apply\b`, Message: "terraform apply is blocked."},
		{Name: "block-mkfs", Pattern: "mkfs", Message: "mkfs is blocked."},
	})

	if len(result.Issues) != 0 {
		t.Errorf("Expected no issues, got %+v", result.Issues)
	}
	if result.Errors != 0 || result.Warns != 0 {
		t.Errorf("Expected zero counts, got %d errors %d warnings", result.Errors, result.Warns)
	}
}

func TestLinter_FindsProblems(t *testing.T) {
	l := NewLinter()

	result := l.LintRules([]Rule{
		{Name: "dup", Pattern: "mkfs", Message: "x."},
		{Name: "dup", Pattern: "shutdown", Message: "x."},
		{Name: "bad-pattern", Pattern: "re:[unclosed", Message: "x."},
		{Name: "no-period", Pattern: "halt", Message: "halt is blocked"},
		{Pattern: "reboot", Message: "x."},
	})

	if result.Errors != 3 {
		t.Errorf("Expected 3 errors (duplicate, bad pattern, unnamed), got %d: %+v", result.Errors, result.Issues)
	}
	if result.Warns != 1 {
		t.Errorf("Expected 1 warning (missing period), got %d: %+v", result.Warns, result.Issues)
	}

	report := result.FormatIssues()
	for _, want := range []string{"duplicate rule name", "invalid regexp", "should end with a period"} {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q:\n%s", want, report)
		}
	}
}

func TestLinter_LintFile(t *testing.T) {
	dir := t.TempDir()
	path := writeRuleFile(t, dir, "rules.yaml", `version: 1
rules:
  - name: ok
    pattern: mkfs
    message: "mkfs is blocked."
  - name: bad
    pattern: "re:[unclosed"
    message: "x."
`)

	l := NewLinter()
	result, err := l.LintFile(path)
	if err != nil {
		t.Fatalf("LintFile failed: %v", err)
	}
	if result.Errors != 1 {
		t.Errorf("Expected 1 error, got %d: %+v", result.Errors, result.Issues)
	}

	if _, err := l.LintFile(dir + "/missing.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLinter_AgreesWithEngine(t *testing.T) {
	// Any rule the linter passes must be accepted by the engine, and any
	// rule it rejects must be skipped. The two share one compile path.
	rules := []Rule{
		{Name: "good", Pattern: "mkfs", Message: "mkfs is blocked."},
		{Name: "bad", Pattern: "re:[unclosed", Message: "x."},
	}

	l := NewLinter()
	result := l.LintRules(rules)
	if result.Errors != 1 {
		t.Fatalf("Expected 1 lint error, got %d", result.Errors)
	}

	e := NewEngineWithRules(rules)
	if got := len(e.UserRules()); got != 1 {
		t.Errorf("Expected engine to accept 1 rule, got %d", got)
	}
}
