package ui

import (
	"fmt"
	"os"
)

// PrintSuccess prints a styled success message with the [autoguard] prefix.
func PrintSuccess(msg string) {
	if IsPlainMode() {
		fmt.Printf("[autoguard] OK: %s\n", msg)
		return
	}
	fmt.Printf("%s %s %s\n", Prefix(), StyleSuccess.Render(IconCheck), msg)
}

// PrintError prints a styled error message with the [autoguard] prefix.
func PrintError(msg string) {
	if IsPlainMode() {
		fmt.Fprintf(os.Stderr, "[autoguard] ERROR: %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s %s\n", Prefix(), StyleError.Render(IconCross), msg)
}

// PrintWarning prints a styled warning message with the [autoguard] prefix.
func PrintWarning(msg string) {
	if IsPlainMode() {
		fmt.Printf("[autoguard] WARNING: %s\n", msg)
		return
	}
	fmt.Printf("%s %s %s\n", Prefix(), StyleWarning.Render(IconWarning), msg)
}

// PrintBlocked prints a styled block verdict with the [autoguard] prefix.
func PrintBlocked(msg string) {
	if IsPlainMode() {
		fmt.Printf("[autoguard] BLOCKED: %s\n", msg)
		return
	}
	fmt.Printf("%s %s %s\n", Prefix(), StyleError.Render(IconBlock), msg)
}

// PrintInfo prints an unstyled informational message with the prefix.
func PrintInfo(msg string) {
	fmt.Printf("%s %s\n", Prefix(), msg)
}
