// Package settings manages the agent settings file the guard installs
// itself into. Install registers the hook under PreToolUse and writes the
// static deny-list; uninstall removes exactly what install added. Everything
// else in the file belongs to the user and is preserved byte-for-byte at the
// JSON value level, including keys this version does not know about.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AutoGuard/autoguard/internal/fileutil"
	"github.com/AutoGuard/autoguard/internal/logger"
)

var log = logger.New("settings")

// DefaultPath is the project-level agent settings file.
const DefaultPath = ".claude/settings.local.json"

// hookEvent is the lifecycle event the guard registers under.
const hookEvent = "PreToolUse"

// hookMatcher is the tool the registration applies to.
const hookMatcher = "Bash"

// HookCommand is the shell command the agent runs for each matched tool call.
const HookCommand = "autoguard hook"

// denyList is the static first line of defense: literal command prefixes the
// agent refuses before the classifier is even consulted. The classifier
// fails open, so the catastrophic cases are duplicated here where a guard
// crash cannot unprotect them.
var denyList = []string{
	"Bash(git push:*)",
	"Bash(sudo:*)",
	"Bash(rm -rf:*)",
	"Bash(ssh:*)",
	"Bash(scp:*)",
}

// Manager reads and writes one agent settings file.
type Manager struct {
	path string
}

// NewManager creates a manager for the given settings file path. An empty
// path selects the project-level default.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultPath
	}
	return &Manager{path: path}
}

// Path returns the settings file path this manager operates on.
func (m *Manager) Path() string {
	return m.path
}

// load decodes the settings file into a generic map so unknown keys survive
// a rewrite. A missing file is an empty settings object.
func (m *Manager) load() (map[string]any, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", m.path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON: %w", m.path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func (m *Manager) save(doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(m.path); dir != "." {
		if err := fileutil.SecureMkdirAll(dir); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := fileutil.SecureWriteFile(m.path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.path, err)
	}
	return nil
}

// Installed reports whether the hook registration is present.
func (m *Manager) Installed() (bool, error) {
	doc, err := m.load()
	if err != nil {
		return false, err
	}
	for _, entry := range hookEntries(doc) {
		if isGuardEntry(entry) {
			return true, nil
		}
	}
	return false, nil
}

// Install writes the hook registration and the static deny-list. It is
// idempotent: running it twice leaves one registration and one copy of each
// deny entry.
func (m *Manager) Install() error {
	doc, err := m.load()
	if err != nil {
		return err
	}

	entries := hookEntries(doc)
	kept := entries[:0]
	for _, entry := range entries {
		if !isGuardEntry(entry) {
			kept = append(kept, entry)
		}
	}
	kept = append(kept, map[string]any{
		"matcher": hookMatcher,
		"hooks": []any{
			map[string]any{"type": "command", "command": HookCommand},
		},
	})
	setHookEntries(doc, kept)

	deny := denyEntries(doc)
	seen := make(map[string]bool, len(deny))
	for _, d := range deny {
		seen[d] = true
	}
	for _, d := range denyList {
		if !seen[d] {
			deny = append(deny, d)
		}
	}
	setDenyEntries(doc, deny)

	log.Info("installed hook registration in %s", m.path)
	return m.save(doc)
}

// Uninstall removes the hook registration and the deny entries Install
// added. User-authored deny entries and hook registrations stay.
func (m *Manager) Uninstall() error {
	doc, err := m.load()
	if err != nil {
		return err
	}

	entries := hookEntries(doc)
	kept := entries[:0]
	for _, entry := range entries {
		if !isGuardEntry(entry) {
			kept = append(kept, entry)
		}
	}
	setHookEntries(doc, kept)

	ours := make(map[string]bool, len(denyList))
	for _, d := range denyList {
		ours[d] = true
	}
	deny := denyEntries(doc)
	keptDeny := deny[:0]
	for _, d := range deny {
		if !ours[d] {
			keptDeny = append(keptDeny, d)
		}
	}
	setDenyEntries(doc, keptDeny)

	log.Info("removed hook registration from %s", m.path)
	return m.save(doc)
}

// hookEntries returns the PreToolUse matcher entries, if any.
func hookEntries(doc map[string]any) []any {
	hooks, _ := doc["hooks"].(map[string]any)
	entries, _ := hooks[hookEvent].([]any)
	return entries
}

func setHookEntries(doc map[string]any, entries []any) {
	hooks, _ := doc["hooks"].(map[string]any)
	if hooks == nil {
		hooks = map[string]any{}
	}
	if len(entries) == 0 {
		delete(hooks, hookEvent)
	} else {
		hooks[hookEvent] = entries
	}
	if len(hooks) == 0 {
		delete(doc, "hooks")
	} else {
		doc["hooks"] = hooks
	}
}

// isGuardEntry reports whether a PreToolUse entry was written by Install.
// Any hook in the entry invoking this binary counts, so stale registrations
// from older versions are replaced rather than duplicated.
func isGuardEntry(entry any) bool {
	em, ok := entry.(map[string]any)
	if !ok {
		return false
	}
	hooks, _ := em["hooks"].([]any)
	for _, h := range hooks {
		hm, ok := h.(map[string]any)
		if !ok {
			continue
		}
		if cmd, _ := hm["command"].(string); cmd == HookCommand {
			return true
		}
	}
	return false
}

func denyEntries(doc map[string]any) []string {
	perms, _ := doc["permissions"].(map[string]any)
	raw, _ := perms["deny"].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func setDenyEntries(doc map[string]any, deny []string) {
	perms, _ := doc["permissions"].(map[string]any)
	if perms == nil {
		perms = map[string]any{}
	}
	if len(deny) == 0 {
		delete(perms, "deny")
	} else {
		vals := make([]any, len(deny))
		for i, d := range deny {
			vals[i] = d
		}
		perms["deny"] = vals
	}
	if len(perms) == 0 {
		delete(doc, "permissions")
	} else {
		doc["permissions"] = perms
	}
}
