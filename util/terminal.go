package util

import (
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// TerminalWidth returns the column width of the attached terminal, or a
// conventional default when stdout is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
