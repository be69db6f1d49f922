// Package detector selects the console output mode from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the rendering mode of the console.
type OutputMode int

const (
	// ModeAuto detects the mode from the environment.
	ModeAuto OutputMode = iota
	// ModeInteractive renders with the terminal's full color profile.
	ModeInteractive
	// ModeLinear renders plain ANSI lines suited to CI logs.
	ModeLinear
)

// DetectEnvironment returns ModeLinear when stdout is not a terminal or CI is set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI")) //nolint:gosec // fd fits in int
}

func detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeInteractive
}

// ResolveMode applies the user's --output-mode flag to the detected mode.
// Unknown values keep the detected mode.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "interactive", "tui":
		return ModeInteractive
	case "linear", "ci":
		return ModeLinear
	default:
		return detected
	}
}
