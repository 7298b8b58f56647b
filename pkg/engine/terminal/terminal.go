// Package terminal reports the size of the controlling terminal for the
// developer tools that print to it.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if stdout is not a terminal.
func GetSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// RuleWidth returns the width of a horizontal rule that fits the terminal,
// capped at max.
func RuleWidth(max int) int {
	width, _ := GetSize()
	if width > max {
		return max
	}
	return width
}
