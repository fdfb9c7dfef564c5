package rules

import "regexp"

// File deletion: rm, rmdir, unlink, shred as command tokens regardless of
// arguments. rm is matched either followed by whitespace or as the entire
// trailing token so that longer tokens containing "rm" never trigger it.
var (
	rmSpace     = regexp.MustCompile(`\brm\s`)
	rmEnd       = regexp.MustCompile(`\brm$`)
	rmdirToken  = regexp.MustCompile(`\brmdir\b`)
	unlinkToken = regexp.MustCompile(`\bunlink\b`)
	shredToken  = regexp.MustCompile(`\bshred\b`)

	rmMessage     = "Autonomous mode: rm is blocked (no file deletion)."
	rmdirMessage  = "Autonomous mode: rmdir is blocked (no directory deletion)."
	unlinkMessage = "Autonomous mode: unlink is blocked (no file deletion)."
	shredMessage  = "Autonomous mode: shred is blocked (no file deletion)."
)

func checkFileDeletion(cmd string) *MatchResult {
	if rmSpace.MatchString(cmd) || rmEnd.MatchString(cmd) {
		return blocked(CategoryFileDeletion, "rm", rmMessage)
	}

	if rmdirToken.MatchString(cmd) {
		return blocked(CategoryFileDeletion, "rmdir", rmdirMessage)
	}

	if unlinkToken.MatchString(cmd) {
		return blocked(CategoryFileDeletion, "unlink", unlinkMessage)
	}

	if shredToken.MatchString(cmd) {
		return blocked(CategoryFileDeletion, "shred", shredMessage)
	}

	return nil
}

func fileDeletionInfo() []RuleInfo {
	return []RuleInfo{
		{Name: "rm", Pattern: rmSpace.String() + " | " + rmEnd.String(), Message: rmMessage},
		{Name: "rmdir", Pattern: rmdirToken.String(), Message: rmdirMessage},
		{Name: "unlink", Pattern: unlinkToken.String(), Message: unlinkMessage},
		{Name: "shred", Pattern: shredToken.String(), Message: shredMessage},
	}
}
