// Package completion provides CLI tab-completion for autoguard.
//
// The binary itself handles completions: when invoked with COMP_LINE set
// (by the shell), it outputs matching completions and exits.
// Works across bash, zsh, and fish with a one-time install.
package completion

import (
	"os"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/install"
	"github.com/posener/complete/v2/predict"
)

// command defines the full autoguard CLI completion tree.
var command = &complete.Command{
	Sub: map[string]*complete.Command{
		"hook": {},
		"check": {
			Flags: map[string]complete.Predictor{
				"json": predict.Nothing,
			},
			Args: predict.Something,
		},
		"list-rules": {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
		"lint-rules": {Args: predict.Files("*.yaml")},
		"install": {
			Flags: map[string]complete.Predictor{
				"yes":      predict.Nothing,
				"settings": predict.Files("*.json"),
			},
		},
		"uninstall": {
			Flags: map[string]complete.Predictor{
				"yes":      predict.Nothing,
				"settings": predict.Files("*.json"),
			},
		},
		"version":    {},
		"help":       {},
		"completion": {Flags: map[string]complete.Predictor{"install": predict.Nothing, "uninstall": predict.Nothing}},
	},
}

// Run checks if the binary was invoked for shell completion.
// If COMP_LINE is set, it outputs completions and exits (never returns).
// Otherwise it returns false and the program continues normally.
func Run() bool {
	if os.Getenv("COMP_LINE") != "" || os.Getenv("COMP_INSTALL") != "" || os.Getenv("COMP_UNINSTALL") != "" {
		command.Complete("autoguard")
		return true
	}
	return false
}

// Install sets up shell completion for the detected shells.
func Install() error {
	return install.Install("autoguard")
}

// Uninstall removes shell completion for the detected shells.
func Uninstall() error {
	return install.Uninstall("autoguard")
}

// IsInstalled reports whether shell completion is already set up.
func IsInstalled() bool {
	return install.IsInstalled("autoguard")
}
