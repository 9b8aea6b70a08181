package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var colorOff bool

// DisableColor forces plain output for the rest of the process, used by
// the --no-color flag.
func DisableColor() {
	colorOff = true
}

// ColorEnabled reports whether styled output should be emitted: stdout is
// a terminal with a color profile, NO_COLOR is unset, and color has not
// been disabled by flag.
func ColorEnabled() bool {
	if colorOff || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !IsStdoutTTY() {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
