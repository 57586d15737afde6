// Package render draws the live top-K view in a fixed block of terminal lines.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirtop/internal/dirtop"
)

// sizeWidth is the width of the right-aligned size column.
const sizeWidth = 9

// Viewport repaints a fixed number of terminal lines in place.
//
// The first line holds the entry counter, the remaining lines one directory
// each. Every frame moves the cursor back to the top of the block and
// overwrites all lines, so content above the block is never scrolled away.
type Viewport struct {
	w      io.Writer
	height int
	size   lipgloss.Style
}

// New creates a viewport showing up to k directories on w.
func New(w io.Writer, k int) *Viewport {
	if k < 0 {
		k = 0
	}

	renderer := lipgloss.NewRenderer(w)

	return &Viewport{
		w:      w,
		height: k + 1,
		size:   renderer.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Height returns the number of lines the viewport occupies.
func (v *Viewport) Height() int {
	return v.height
}

// Init reserves the viewport by printing height empty lines.
func (v *Viewport) Init() error {
	_, err := io.WriteString(v.w, strings.Repeat("\n", v.height))

	return err
}

// Render overwrites the viewport with the entry counter and the top directories.
// Directories beyond the viewport are dropped; missing ones leave blank lines.
// The frame is written in a single call.
func (v *Viewport) Render(total uint64, top []dirtop.DirSize) error {
	var frame strings.Builder

	frame.WriteString(ansi.CursorUp(v.height))
	frame.WriteString("\r" + ansi.EraseEntireLine)
	fmt.Fprintf(&frame, "Total file count: %s\n", humanize.Comma(int64(total))) //nolint:gosec // Entry counts fit int64

	rows := min(len(top), v.height-1)

	for _, dir := range top[:rows] {
		size := fmt.Sprintf("%*s", sizeWidth, humanize.Bytes(dir.Size))

		frame.WriteString(ansi.EraseEntireLine)
		fmt.Fprintf(&frame, "%s %q\n", v.size.Render(size), filepath.ToSlash(dir.Path))
	}

	for range v.height - 1 - rows {
		frame.WriteString(ansi.EraseEntireLine + "\n")
	}

	_, err := io.WriteString(v.w, frame.String())

	return err
}

// HideCursor hides the terminal cursor while the viewport is being refreshed.
func (v *Viewport) HideCursor() {
	fmt.Fprint(v.w, ansi.HideCursor)
}

// ShowCursor restores the terminal cursor.
func (v *Viewport) ShowCursor() {
	fmt.Fprint(v.w, ansi.ShowCursor)
}
