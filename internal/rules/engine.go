// Package rules implements the command classifier: an ordered pipeline of
// category rule groups evaluated against raw command text. The first matching
// rule wins and halts evaluation; a command matching nothing is allowed.
//
// The builtin groups are pattern tables compiled at package init and never
// mutated, so classification is a pure function of the command string and
// concurrent invocations need no coordination.
package rules

import (
	"regexp"

	"github.com/AutoGuard/autoguard/internal/logger"
)

var log = logger.New("rules")

// detection is a single compiled rule: a pattern recognizer over the command
// text plus the human-readable reason reported when it fires.
type detection struct {
	name    string
	pattern *regexp.Regexp
	message string
}

// group is one hazard category. Groups with plain table semantics set rules;
// groups with context-sensitive logic (git's force-push composite, docker's
// exec payload inspection) implement it in check.
type group struct {
	category Category
	check    func(cmd string) *MatchResult
	info     []RuleInfo
}

// builtinGroups is the fixed evaluation order. A command matching rules in
// two groups always reports the reason from the earlier group; this order is
// part of the contract and must not be reshuffled.
var builtinGroups = []group{
	{CategoryVersionControl, checkVersionControl, versionControlInfo()},
	{CategoryRemoteAccess, checkRemoteAccess, remoteAccessInfo()},
	{CategoryDeployment, checkDeployment, deploymentInfo()},
	{CategoryFileDeletion, checkFileDeletion, fileDeletionInfo()},
	{CategoryPrivilege, checkPrivilegeEscalation, privilegeInfo()},
	{CategoryNetwork, checkNetwork, networkInfo()},
	{CategoryContainer, checkContainer, containerInfo()},
}

// Engine classifies commands against the builtin category groups and any
// user rules. User rules run after every builtin group so the builtin
// precedence order and first-match reasons are unchanged by extensions.
type Engine struct {
	groups []group
	user   []compiledUserRule
}

// NewEngine creates an engine with the builtin groups only.
func NewEngine() *Engine {
	return &Engine{groups: builtinGroups}
}

// NewEngineWithRules creates an engine with the builtin groups plus user
// rules. Invalid user rules are skipped with a warning rather than failing
// the whole engine: the hook must stay available even with a bad rule file.
func NewEngineWithRules(userRules []Rule) *Engine {
	e := &Engine{groups: builtinGroups}
	for _, r := range userRules {
		if !r.IsEnabled() {
			continue
		}
		cr, err := compileUserRule(r)
		if err != nil {
			log.Warn("Skipping user rule %q from %s: %v", r.Name, r.FilePath, err)
			continue
		}
		e.user = append(e.user, cr)
	}
	return e
}

// Classify runs the command through the pipeline and returns the decision.
// Evaluation halts at the first match; later groups are never consulted.
func (e *Engine) Classify(cmd string) MatchResult {
	for _, g := range e.groups {
		if res := g.check(cmd); res != nil {
			log.Debug("blocked by %s/%s", res.Category, res.RuleName)
			return *res
		}
	}

	for _, cr := range e.user {
		if cr.Match(cmd) {
			log.Debug("blocked by user rule %s", cr.rule.Name)
			return MatchResult{
				Matched:  true,
				Category: CategoryUser,
				RuleName: cr.rule.Name,
				Message:  cr.rule.Message,
			}
		}
	}

	return MatchResult{}
}

// Groups returns the builtin category groups in evaluation order.
func (e *Engine) Groups() []GroupInfo {
	infos := make([]GroupInfo, 0, len(e.groups))
	for _, g := range e.groups {
		infos = append(infos, GroupInfo{Category: g.category, Rules: g.info})
	}
	return infos
}

// UserRules returns the user rules the engine accepted, in evaluation order.
func (e *Engine) UserRules() []Rule {
	out := make([]Rule, 0, len(e.user))
	for _, cr := range e.user {
		out = append(out, cr.rule)
	}
	return out
}

// blocked is a convenience constructor for a block result.
func blocked(cat Category, name, message string) *MatchResult {
	return &MatchResult{Matched: true, Category: cat, RuleName: name, Message: message}
}
