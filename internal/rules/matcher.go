package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// User rule patterns come in three forms:
//
//	re:<regexp>   — matched anywhere in the command text
//	glob:<glob>   — matched against the whole command text
//	<token>       — a literal command token, matched at word boundaries
//
// Patterns are validated and compiled when the engine is built, so
// classification never re-compiles or sees an invalid pattern.
type compiledUserRule struct {
	rule Rule
	re   *regexp.Regexp
	g    glob.Glob
}

// maxPatternLen bounds user-defined pattern length to bound compilation cost.
const maxPatternLen = 1024

func compileUserRule(r Rule) (compiledUserRule, error) {
	cr := compiledUserRule{rule: r}

	if r.Name == "" {
		return cr, fmt.Errorf("rule has no name")
	}
	if r.Pattern == "" {
		return cr, fmt.Errorf("rule %q has no pattern", r.Name)
	}
	if r.Message == "" {
		return cr, fmt.Errorf("rule %q has no message", r.Name)
	}
	if len(r.Pattern) > maxPatternLen {
		return cr, fmt.Errorf("rule %q: pattern too long (%d > %d chars)", r.Name, len(r.Pattern), maxPatternLen)
	}
	if err := sanitizePattern(r.Pattern); err != nil {
		return cr, fmt.Errorf("rule %q: %w", r.Name, err)
	}

	switch {
	case strings.HasPrefix(r.Pattern, "re:"):
		re, err := regexp.Compile(r.Pattern[3:])
		if err != nil {
			return cr, fmt.Errorf("rule %q: invalid regexp: %w", r.Name, err)
		}
		cr.re = re
	case strings.HasPrefix(r.Pattern, "glob:"):
		g, err := glob.Compile(r.Pattern[5:])
		if err != nil {
			return cr, fmt.Errorf("rule %q: invalid glob: %w", r.Name, err)
		}
		cr.g = g
	default:
		// Literal token: word-boundary match, same strategy as the builtin
		// category tables.
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(r.Pattern) + `\b`)
		if err != nil {
			return cr, fmt.Errorf("rule %q: invalid token: %w", r.Name, err)
		}
		cr.re = re
	}

	return cr, nil
}

// Match reports whether the command matches this rule.
func (cr compiledUserRule) Match(cmd string) bool {
	if cr.re != nil {
		return cr.re.MatchString(cmd)
	}
	if cr.g != nil {
		return cr.g.Match(cmd)
	}
	return false
}

// sanitizePattern rejects patterns containing null bytes or control
// characters so a broken rule file produces a clear error.
func sanitizePattern(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == 0 {
			return fmt.Errorf("pattern contains null byte at position %d", i)
		}
		if pattern[i] < 0x20 && pattern[i] != '\t' {
			return fmt.Errorf("pattern contains control character 0x%02x at position %d", pattern[i], i)
		}
	}
	return nil
}
