package rules

import (
	"regexp"
	"strings"
)

// Remote access: ssh and scp are blocked unconditionally; rsync only when
// the command carries a remote-host marker (a colon anywhere in the text).
var (
	sshToken   = regexp.MustCompile(`\bssh\b`)
	scpToken   = regexp.MustCompile(`\bscp\b`)
	rsyncToken = regexp.MustCompile(`\brsync\b`)

	sshMessage   = "Autonomous mode: ssh is blocked (no remote access)."
	scpMessage   = "Autonomous mode: scp is blocked (no remote access)."
	rsyncMessage = "Autonomous mode: rsync to remote hosts is blocked."
)

func checkRemoteAccess(cmd string) *MatchResult {
	if sshToken.MatchString(cmd) {
		return blocked(CategoryRemoteAccess, "ssh", sshMessage)
	}

	if scpToken.MatchString(cmd) {
		return blocked(CategoryRemoteAccess, "scp", scpMessage)
	}

	if rsyncToken.MatchString(cmd) && strings.Contains(cmd, ":") {
		return blocked(CategoryRemoteAccess, "rsync-remote", rsyncMessage)
	}

	return nil
}

func remoteAccessInfo() []RuleInfo {
	return []RuleInfo{
		{Name: "ssh", Pattern: sshToken.String(), Message: sshMessage},
		{Name: "scp", Pattern: scpToken.String(), Message: scpMessage},
		{Name: "rsync-remote", Pattern: rsyncToken.String() + ` + ":"`, Message: rsyncMessage},
	}
}
