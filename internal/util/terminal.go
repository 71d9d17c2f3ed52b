package util

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is the usage width used when no terminal is attached
const DefaultWidth = 80

// TerminalSizer interface for querying the terminal
type TerminalSizer interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// IsTerminal checks if we are attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the dimensions of the terminal
func (t *DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// TerminalWidth returns the column count of the terminal attached to stdout,
// or DefaultWidth when stdout is not a terminal.
func TerminalWidth(terminal TerminalSizer) int {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	fd := int(os.Stdout.Fd())
	if !terminal.IsTerminal(fd) {
		return DefaultWidth
	}

	width, _, err := terminal.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}
