package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/idelchi/dirtop/internal/dirtop"
)

// reservedRows are the terminal rows kept free of directory lines:
// the entry counter and the shell prompt after exit.
const reservedRows = 2

// detectLines returns how many directories fit in the terminal behind w.
func detectLines(w io.Writer, terminal func(io.Writer) bool) int {
	f, ok := w.(*os.File)
	if !ok || !terminal(w) {
		return dirtop.DefaultLines
	}

	_, height, err := term.GetSize(int(f.Fd())) //nolint:gosec // File descriptors fit int
	if err != nil {
		return dirtop.DefaultLines
	}

	return linesForHeight(height)
}

// linesForHeight caps the directory count to a terminal of the given height.
func linesForHeight(height int) int {
	lines := height - reservedRows
	if lines > dirtop.DefaultLines {
		return dirtop.DefaultLines
	}

	return max(lines, 1)
}
