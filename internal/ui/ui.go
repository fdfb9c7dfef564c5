// Package ui provides styled terminal output for the CLI subcommands. The
// hook path never goes through this package: its stdout carries only the
// decision JSON.
package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// plainMode disables colors and icons for CI, piped output, or --no-color.
var (
	plainMode bool
	plainOnce sync.Once
	plainMu   sync.RWMutex
)

// initPlainMode auto-detects plain mode on first use.
// Precedence: NO_COLOR > TTY detection.
func initPlainMode() {
	plainOnce.Do(func() {
		// NO_COLOR wins — https://no-color.org
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			plainMode = true
			return
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			plainMode = true
		}
	})
}

// SetPlainMode explicitly enables or disables plain mode. Call this early,
// when parsing --no-color, before any output.
func SetPlainMode(plain bool) {
	plainMu.Lock()
	defer plainMu.Unlock()
	plainMode = plain
	plainOnce.Do(func() {})
}

// IsPlainMode returns true if styling is disabled.
func IsPlainMode() bool {
	initPlainMode()
	plainMu.RLock()
	defer plainMu.RUnlock()
	return plainMode
}

// Color palette. Cool guard tones; adapts to OS theme.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#2F4858", Dark: "#7FB4D4"} // Slate Blue
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#4A6B3A", Dark: "#9CC069"} // Sage
	ColorError   = lipgloss.AdaptiveColor{Light: "#A33B3B", Dark: "#E06C6C"} // Muted Red
	ColorWarning = lipgloss.AdaptiveColor{Light: "#9A6B0F", Dark: "#E0B24D"} // Amber
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#8E9196"} // Gray
)

// Reusable styles.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleCommand = lipgloss.NewStyle().Foreground(ColorPrimary)

	stylePrefix = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)

// Icons. Color is the primary signal; shape reinforces it.
const (
	IconCheck   = "✔" // ✔ success / allowed
	IconCross   = "✖" // ✖ error
	IconBlock   = "⊘" // ⊘ blocked
	IconWarning = "⚠" // ⚠ warning
)

// Prefix returns the branded [autoguard] prefix string.
func Prefix() string {
	if IsPlainMode() {
		return "[autoguard]"
	}
	return stylePrefix.Render("[autoguard]")
}
