// Package sys provides terminal utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY reports whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WinSize returns the size of the terminal referenced by the given file, or
// (-1, -1) if it cannot be determined.
func WinSize(file *os.File) (row, col int) { return winSize(file) }
