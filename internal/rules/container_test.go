package rules

import (
	"testing"
)

func TestContainer_Lifecycle(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		cmd      string
		blocked  bool
		rule     string
		category Category
	}{
		// "docker rm" contains an rm token, and the file-deletion group runs
		// before this one, so the pipeline reports rm, not docker-rm.
		{"docker rm api", true, "rm", CategoryFileDeletion},
		{"docker rm -f $(docker ps -q)", true, "rm", CategoryFileDeletion},
		{"docker stop db", true, "docker-stop", CategoryContainer},
		{"docker kill worker", true, "docker-kill", CategoryContainer},
		{"docker-compose down", true, "compose-down", CategoryContainer},
		{"docker compose down -v", true, "compose-down", CategoryContainer},

		{"docker ps", false, "", ""},
		{"docker logs -f api", false, "", ""},
		{"docker compose up -d", false, "", ""},
		{"docker build -t app .", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			res := e.Classify(tt.cmd)
			if tt.blocked {
				if !res.Matched {
					t.Fatalf("Expected block for %q, got allow", tt.cmd)
				}
				if res.RuleName != tt.rule {
					t.Errorf("Expected rule %s for %q, got %s", tt.rule, tt.cmd, res.RuleName)
				}
				if res.Category != tt.category {
					t.Errorf("Expected category %s, got %s", tt.category, res.Category)
				}
			} else if res.Matched {
				t.Errorf("Unexpected block for %q: %s", tt.cmd, res.RuleName)
			}
		})
	}
}

func TestContainer_DockerRmRule(t *testing.T) {
	// The docker-rm rule is checked in isolation here: in the full pipeline
	// the file-deletion group claims "docker rm" first.
	tests := []struct {
		cmd     string
		blocked bool
	}{
		{"docker rm api", true},
		{"docker rm -f $(docker ps -q)", true},
		{"docker rmi old-image", false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			res := checkContainer(tt.cmd)
			if tt.blocked {
				if res == nil {
					t.Fatalf("Expected match for %q, got none", tt.cmd)
				}
				if res.RuleName != "docker-rm" {
					t.Errorf("Expected rule docker-rm for %q, got %s", tt.cmd, res.RuleName)
				}
			} else if res != nil {
				t.Errorf("Unexpected match for %q: %s", tt.cmd, res.RuleName)
			}
		})
	}
}

func TestContainer_ExecSQL(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		cmd     string
		blocked bool
		rule    string
	}{
		{`docker exec db psql -c "DROP TABLE users;"`, true, "exec-sql-drop"},
		{`docker exec db psql -c "drop database staging"`, true, "exec-sql-drop"},
		{`docker exec db psql -c "DELETE FROM sessions"`, true, "exec-sql-delete"},
		{`docker exec db psql -c "TRUNCATE events"`, true, "exec-sql-truncate"},
		{`docker exec db psql -c "TRUNCATE TABLE logs"`, true, "exec-sql-truncate"},
		{`docker exec db psql -c "ALTER TABLE users DROP COLUMN email"`, true, "exec-sql-alter-drop"},

		// Non-destructive exec payloads are fine
		{`docker exec db psql -c "SELECT 1"`, false, ""},
		{`docker exec api ls /app`, false, ""},
		{`docker exec db pg_dump mydb`, false, ""},
		// Keywords in non-SQL contexts fall through the statement checks
		{`docker exec api grep deleted_at models.py`, false, ""},

		// Destructive SQL without docker exec is not this group's concern
		{`psql -c "DROP TABLE users"`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			res := e.Classify(tt.cmd)
			if tt.blocked {
				if !res.Matched {
					t.Fatalf("Expected block for %q, got allow", tt.cmd)
				}
				if res.RuleName != tt.rule {
					t.Errorf("Expected rule %s for %q, got %s", tt.rule, tt.cmd, res.RuleName)
				}
			} else if res.Matched {
				t.Errorf("Unexpected block for %q: %s", tt.cmd, res.RuleName)
			}
		})
	}
}

func TestContainer_ExecManagePy(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		cmd     string
		blocked bool
		rule    string
	}{
		{"docker exec web python manage.py flush", true, "exec-manage-flush"},
		{"docker exec web python manage.py reset_db", true, "exec-manage-reset-db"},
		{"docker exec web python manage.py dbshell", true, "exec-manage-dbshell"},

		{"docker exec web python manage.py migrate", false, ""},
		{"docker exec web python manage.py test", false, ""},
		{"docker exec web python manage.py showmigrations", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			res := e.Classify(tt.cmd)
			if tt.blocked {
				if !res.Matched {
					t.Fatalf("Expected block for %q, got allow", tt.cmd)
				}
				if res.RuleName != tt.rule {
					t.Errorf("Expected rule %s for %q, got %s", tt.rule, tt.cmd, res.RuleName)
				}
			} else if res.Matched {
				t.Errorf("Unexpected block for %q: %s", tt.cmd, res.RuleName)
			}
		})
	}
}
