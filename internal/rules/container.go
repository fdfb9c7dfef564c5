package rules

import (
	"regexp"
	"strings"
)

// Containerized execution safety. Lifecycle commands that stop, remove, or
// kill a container (or tear down a compose environment) block unconditionally.
// Commands that execute inside a running container are inspected further: the
// payload text is scanned for destructive SQL and destructive manage.py
// subcommands, each with a distinct reason. Non-destructive exec is allowed.
var (
	dockerRm          = regexp.MustCompile(`\bdocker\s+rm\b`)
	dockerStop        = regexp.MustCompile(`\bdocker\s+stop\b`)
	dockerKill        = regexp.MustCompile(`\bdocker\s+kill\b`)
	composeDownHyphen = regexp.MustCompile(`\bdocker-compose\s+down\b`)
	composeDownSpace  = regexp.MustCompile(`\bdocker\s+compose\s+down\b`)

	dockerExec = regexp.MustCompile(`\bdocker\s+exec\b`)

	// SQL inspection runs on the lowercased payload. The coarse keyword gate
	// mirrors the specific checks that follow: keywords in code contexts
	// (variable names) fall through unless they form a real SQL statement.
	sqlKeyword    = regexp.MustCompile(`\b(drop|delete|truncate)\b`)
	sqlDrop       = regexp.MustCompile(`\b(drop\s+table|drop\s+database|drop\s+index)\b`)
	sqlDeleteFrom = regexp.MustCompile(`\bdelete\s+from\b`)
	sqlTruncate   = regexp.MustCompile(`\btruncate\s+(table\s+)?\w`)
	sqlAlterDrop  = regexp.MustCompile(`\balter\s+table\b.*\bdrop\b`)
	manageFlush   = regexp.MustCompile(`manage\.py\s+flush\b`)
	manageResetDB = regexp.MustCompile(`manage\.py\s+reset_db\b`)
	manageDBShell = regexp.MustCompile(`manage\.py\s+dbshell\b`)

	dockerRmMessage     = "Autonomous mode: docker rm is blocked."
	dockerStopMessage   = "Autonomous mode: docker stop is blocked."
	dockerKillMessage   = "Autonomous mode: docker kill is blocked."
	composeDownMessage  = "Autonomous mode: docker-compose down is blocked."
	sqlDropMessage      = "Autonomous mode: DROP TABLE/DATABASE/INDEX via docker exec is blocked."
	sqlDeleteMessage    = "Autonomous mode: DELETE FROM via docker exec is blocked."
	sqlTruncateMessage  = "Autonomous mode: TRUNCATE via docker exec is blocked."
	sqlAlterDropMessage = "Autonomous mode: ALTER TABLE ... DROP via docker exec is blocked."
	manageFlushMessage  = "Autonomous mode: manage.py flush is blocked (destroys all data)."
	manageResetMessage  = "Autonomous mode: manage.py reset_db is blocked."
	manageShellMessage  = "Autonomous mode: manage.py dbshell is blocked (interactive)."
)

func checkContainer(cmd string) *MatchResult {
	if dockerRm.MatchString(cmd) {
		return blocked(CategoryContainer, "docker-rm", dockerRmMessage)
	}

	if dockerStop.MatchString(cmd) {
		return blocked(CategoryContainer, "docker-stop", dockerStopMessage)
	}

	if dockerKill.MatchString(cmd) {
		return blocked(CategoryContainer, "docker-kill", dockerKillMessage)
	}

	if composeDownHyphen.MatchString(cmd) || composeDownSpace.MatchString(cmd) {
		return blocked(CategoryContainer, "compose-down", composeDownMessage)
	}

	if !dockerExec.MatchString(cmd) {
		return nil
	}

	payload := strings.ToLower(cmd)

	if sqlKeyword.MatchString(payload) {
		if sqlDrop.MatchString(payload) {
			return blocked(CategoryContainer, "exec-sql-drop", sqlDropMessage)
		}
		if sqlDeleteFrom.MatchString(payload) {
			return blocked(CategoryContainer, "exec-sql-delete", sqlDeleteMessage)
		}
		if sqlTruncate.MatchString(payload) {
			return blocked(CategoryContainer, "exec-sql-truncate", sqlTruncateMessage)
		}
	}

	if sqlAlterDrop.MatchString(payload) {
		return blocked(CategoryContainer, "exec-sql-alter-drop", sqlAlterDropMessage)
	}

	if manageFlush.MatchString(payload) {
		return blocked(CategoryContainer, "exec-manage-flush", manageFlushMessage)
	}

	if manageResetDB.MatchString(payload) {
		return blocked(CategoryContainer, "exec-manage-reset-db", manageResetMessage)
	}

	if manageDBShell.MatchString(payload) {
		return blocked(CategoryContainer, "exec-manage-dbshell", manageShellMessage)
	}

	return nil
}

func containerInfo() []RuleInfo {
	return []RuleInfo{
		{Name: "docker-rm", Pattern: dockerRm.String(), Message: dockerRmMessage},
		{Name: "docker-stop", Pattern: dockerStop.String(), Message: dockerStopMessage},
		{Name: "docker-kill", Pattern: dockerKill.String(), Message: dockerKillMessage},
		{Name: "compose-down", Pattern: composeDownHyphen.String() + " | " + composeDownSpace.String(), Message: composeDownMessage},
		{Name: "exec-sql-drop", Pattern: sqlDrop.String(), Message: sqlDropMessage},
		{Name: "exec-sql-delete", Pattern: sqlDeleteFrom.String(), Message: sqlDeleteMessage},
		{Name: "exec-sql-truncate", Pattern: sqlTruncate.String(), Message: sqlTruncateMessage},
		{Name: "exec-sql-alter-drop", Pattern: sqlAlterDrop.String(), Message: sqlAlterDropMessage},
		{Name: "exec-manage-flush", Pattern: manageFlush.String(), Message: manageFlushMessage},
		{Name: "exec-manage-reset-db", Pattern: manageResetDB.String(), Message: manageResetMessage},
		{Name: "exec-manage-dbshell", Pattern: manageDBShell.String(), Message: manageShellMessage},
	}
}
