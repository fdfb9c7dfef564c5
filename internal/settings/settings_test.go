package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func managerAt(t *testing.T) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".claude", "settings.local.json")
	return NewManager(path), path
}

func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Settings file is not valid JSON: %v", err)
	}
	return doc
}

func TestInstall_FreshFile(t *testing.T) {
	m, path := managerAt(t)

	if err := m.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	doc := readDoc(t, path)

	entries := hookEntries(doc)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 PreToolUse entry, got %d", len(entries))
	}
	if !isGuardEntry(entries[0]) {
		t.Errorf("Entry does not invoke the guard: %+v", entries[0])
	}
	entry := entries[0].(map[string]any)
	if entry["matcher"] != "Bash" {
		t.Errorf("Expected matcher Bash, got %v", entry["matcher"])
	}

	deny := denyEntries(doc)
	if len(deny) != len(denyList) {
		t.Errorf("Expected %d deny entries, got %d", len(denyList), len(deny))
	}
}

func TestInstall_Idempotent(t *testing.T) {
	m, path := managerAt(t)

	if err := m.Install(); err != nil {
		t.Fatalf("First install failed: %v", err)
	}
	if err := m.Install(); err != nil {
		t.Fatalf("Second install failed: %v", err)
	}

	doc := readDoc(t, path)
	if n := len(hookEntries(doc)); n != 1 {
		t.Errorf("Expected 1 hook entry after reinstall, got %d", n)
	}
	if n := len(denyEntries(doc)); n != len(denyList) {
		t.Errorf("Expected %d deny entries after reinstall, got %d", len(denyList), n)
	}
}

func TestInstall_PreservesExistingContent(t *testing.T) {
	m, path := managerAt(t)

	existing := map[string]any{
		"model": "opus",
		"permissions": map[string]any{
			"deny":  []any{"WebFetch"},
			"allow": []any{"Bash(make:*)"},
		},
		"hooks": map[string]any{
			"PreToolUse": []any{
				map[string]any{
					"matcher": "Write",
					"hooks":   []any{map[string]any{"type": "command", "command": "lint-check"}},
				},
			},
			"PostToolUse": []any{},
		},
	}
	data, _ := json.Marshal(existing)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	doc := readDoc(t, path)
	if doc["model"] != "opus" {
		t.Error("Unrelated top-level key lost")
	}

	perms := doc["permissions"].(map[string]any)
	if _, ok := perms["allow"]; !ok {
		t.Error("permissions.allow lost")
	}
	deny := denyEntries(doc)
	if deny[0] != "WebFetch" {
		t.Errorf("User deny entry must stay first, got %v", deny)
	}

	entries := hookEntries(doc)
	if len(entries) != 2 {
		t.Fatalf("Expected user entry plus guard entry, got %d", len(entries))
	}
	if isGuardEntry(entries[0]) {
		t.Error("User hook entry must stay first")
	}

	hooks := doc["hooks"].(map[string]any)
	if _, ok := hooks["PostToolUse"]; !ok {
		t.Error("Unrelated hook event lost")
	}
}

func TestUninstall_RemovesOnlyOurs(t *testing.T) {
	m, path := managerAt(t)

	existing := map[string]any{
		"permissions": map[string]any{
			"deny": []any{"WebFetch", "Bash(sudo:*)"},
		},
		"hooks": map[string]any{
			"PreToolUse": []any{
				map[string]any{
					"matcher": "Write",
					"hooks":   []any{map[string]any{"type": "command", "command": "lint-check"}},
				},
			},
		},
	}
	data, _ := json.Marshal(existing)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if err := m.Uninstall(); err != nil {
		t.Fatalf("Uninstall failed: %v", err)
	}

	doc := readDoc(t, path)

	entries := hookEntries(doc)
	if len(entries) != 1 || isGuardEntry(entries[0]) {
		t.Errorf("Expected only the user hook entry to remain, got %+v", entries)
	}

	// "Bash(sudo:*)" is in the static deny-list, so uninstall claims it even
	// though the user wrote it first. "WebFetch" stays.
	deny := denyEntries(doc)
	if len(deny) != 1 || deny[0] != "WebFetch" {
		t.Errorf("Expected only WebFetch to remain, got %v", deny)
	}
}

func TestUninstall_CleansEmptySections(t *testing.T) {
	m, path := managerAt(t)

	if err := m.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if err := m.Uninstall(); err != nil {
		t.Fatalf("Uninstall failed: %v", err)
	}

	doc := readDoc(t, path)
	if _, ok := doc["hooks"]; ok {
		t.Error("Empty hooks section should be removed")
	}
	if _, ok := doc["permissions"]; ok {
		t.Error("Empty permissions section should be removed")
	}
}

func TestInstalled(t *testing.T) {
	m, _ := managerAt(t)

	installed, err := m.Installed()
	if err != nil {
		t.Fatalf("Installed failed: %v", err)
	}
	if installed {
		t.Error("Expected not installed before Install")
	}

	if err := m.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	installed, err = m.Installed()
	if err != nil {
		t.Fatalf("Installed failed: %v", err)
	}
	if !installed {
		t.Error("Expected installed after Install")
	}
}

func TestLoad_RejectsBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path)
	if err := m.Install(); err == nil {
		t.Error("Expected error for unparsable settings file")
	}
}

func TestNewManager_DefaultPath(t *testing.T) {
	if got := NewManager("").Path(); got != DefaultPath {
		t.Errorf("Expected %q, got %q", DefaultPath, got)
	}
}
