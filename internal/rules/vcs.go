package rules

import "regexp"

// Version-control hazards. The group only activates when the command
// contains a git invocation token; non-destructive operations (add, commit,
// status, diff, log, branch listing) match nothing and fall through.
var (
	gitToken = regexp.MustCompile(`\bgit\b`)

	gitDetections = []detection{
		{
			name:    "git-push",
			pattern: regexp.MustCompile(`\bgit\b.*\bpush\b`),
			message: "Autonomous mode: git push is blocked. Commit locally only.",
		},
		{
			name:    "git-reset-hard",
			pattern: regexp.MustCompile(`\bgit\b.*\breset\b.*--hard`),
			message: "Autonomous mode: git reset --hard is blocked (destructive).",
		},
		{
			name:    "git-clean-force",
			pattern: regexp.MustCompile(`\bgit\b.*\bclean\b.*-[a-z]*f`),
			message: "Autonomous mode: git clean -f is blocked (deletes untracked files).",
		},
		{
			name:    "git-checkout-all",
			pattern: regexp.MustCompile(`\bgit\b.*\bcheckout\b\s+\.`),
			message: "Autonomous mode: git checkout . is blocked (discards changes).",
		},
		{
			name:    "git-restore-all",
			pattern: regexp.MustCompile(`\bgit\b.*\brestore\b\s+\.`),
			message: "Autonomous mode: git restore . is blocked (discards changes).",
		},
		{
			name:    "git-branch-force-delete",
			pattern: regexp.MustCompile(`\bgit\b.*\bbranch\b.*-[a-zA-Z]*D`),
			message: "Autonomous mode: git branch -D is blocked (force-deletes branch).",
		},
		{
			name:    "git-stash-drop",
			pattern: regexp.MustCompile(`\bgit\b.*\bstash\b\s+(drop|clear)`),
			message: "Autonomous mode: git stash drop/clear is blocked.",
		},
		{
			name:    "git-rebase-interactive",
			pattern: regexp.MustCompile(`\bgit\b.*\brebase\b.*-[a-z]*i`),
			message: "Autonomous mode: interactive git rebase is blocked.",
		},
	}

	// Explicit force flags block only in combination with push: a bare -f
	// after git could belong to many subcommands.
	gitForceLong  = regexp.MustCompile(`\bgit\b.*--force\b`)
	gitForceShort = regexp.MustCompile(`\bgit\b.*\s-f\b`)
	gitPush       = regexp.MustCompile(`\bgit\b.*\bpush\b`)

	gitForcePushMessage = "Autonomous mode: force push is blocked."
)

func checkVersionControl(cmd string) *MatchResult {
	if !gitToken.MatchString(cmd) {
		return nil
	}

	for _, d := range gitDetections {
		if d.pattern.MatchString(cmd) {
			return blocked(CategoryVersionControl, d.name, d.message)
		}
	}

	if gitForceLong.MatchString(cmd) || gitForceShort.MatchString(cmd) {
		if gitPush.MatchString(cmd) {
			return blocked(CategoryVersionControl, "git-force-push", gitForcePushMessage)
		}
	}

	return nil
}

func versionControlInfo() []RuleInfo {
	infos := detectionsInfo(gitDetections)
	infos = append(infos, RuleInfo{
		Name:    "git-force-push",
		Pattern: gitForceLong.String() + " | " + gitForceShort.String(),
		Message: gitForcePushMessage,
	})
	return infos
}

// detectionsInfo converts a detection table to its listing form.
func detectionsInfo(ds []detection) []RuleInfo {
	infos := make([]RuleInfo, 0, len(ds))
	for _, d := range ds {
		infos = append(infos, RuleInfo{Name: d.name, Pattern: d.pattern.String(), Message: d.message})
	}
	return infos
}
