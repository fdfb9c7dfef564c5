package rules

import "regexp"

// Privilege escalation: sudo, su, doas as standalone tokens. su is matched
// followed by whitespace or as the entire command so words like "surplus"
// never trigger it.
var (
	sudoToken = regexp.MustCompile(`\bsudo\b`)
	suSpace   = regexp.MustCompile(`\bsu\s`)
	suAlone   = regexp.MustCompile(`^su$`)
	doasToken = regexp.MustCompile(`\bdoas\b`)

	sudoMessage = "Autonomous mode: sudo is blocked (no privilege escalation)."
	suMessage   = "Autonomous mode: su is blocked (no privilege escalation)."
	doasMessage = "Autonomous mode: doas is blocked (no privilege escalation)."
)

func checkPrivilegeEscalation(cmd string) *MatchResult {
	if sudoToken.MatchString(cmd) {
		return blocked(CategoryPrivilege, "sudo", sudoMessage)
	}

	if suSpace.MatchString(cmd) || suAlone.MatchString(cmd) {
		return blocked(CategoryPrivilege, "su", suMessage)
	}

	if doasToken.MatchString(cmd) {
		return blocked(CategoryPrivilege, "doas", doasMessage)
	}

	return nil
}

func privilegeInfo() []RuleInfo {
	return []RuleInfo{
		{Name: "sudo", Pattern: sudoToken.String(), Message: sudoMessage},
		{Name: "su", Pattern: suSpace.String() + " | " + suAlone.String(), Message: suMessage},
		{Name: "doas", Pattern: doasToken.String(), Message: doasMessage},
	}
}
