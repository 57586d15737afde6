package render_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirtop/internal/dirtop"
	"github.com/idelchi/dirtop/internal/render"
)

func dirs(n int) []dirtop.DirSize {
	out := make([]dirtop.DirSize, n)
	for i := range out {
		out[i] = dirtop.DirSize{Path: fmt.Sprintf("/root/dir%d", i), Size: uint64(1000 * (n - i))} //nolint:gosec // Small test values
	}

	return out
}

func TestInitReservesHeightLines(t *testing.T) {
	t.Parallel()

	for k := range 5 {
		var buf bytes.Buffer

		view := render.New(&buf, k)
		require.NoError(t, view.Init())

		assert.Equal(t, k+1, view.Height())
		assert.Equal(t, strings.Repeat("\n", k+1), buf.String())
	}
}

func TestRenderAlwaysWritesHeightLines(t *testing.T) {
	t.Parallel()

	for k := range 6 {
		for n := range 8 {
			var buf bytes.Buffer

			view := render.New(&buf, k)
			require.NoError(t, view.Render(42, dirs(n)))

			frame := buf.String()
			assert.Equal(t, k+1, strings.Count(frame, "\n"), "k=%d n=%d", k, n)
			assert.True(t, strings.HasPrefix(frame, ansi.CursorUp(k+1)), "k=%d n=%d", k, n)
			assert.Equal(t, k+1, strings.Count(frame, ansi.EraseEntireLine), "k=%d n=%d", k, n)
		}
	}
}

func TestRenderContent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	view := render.New(&buf, 3)
	require.NoError(t, view.Render(12345, []dirtop.DirSize{
		{Path: "/root/a", Size: 300_000},
		{Path: "/root/a/b", Size: 2_000},
	}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "Total file count: 12,345")
	assert.Contains(t, lines[1], "300 kB")
	assert.Contains(t, lines[1], `"/root/a"`)
	assert.Contains(t, lines[2], "2.0 kB")
	assert.Contains(t, lines[2], `"/root/a/b"`)
	assert.Equal(t, ansi.EraseEntireLine, lines[3])
}

func TestRenderTruncatesToViewport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	view := render.New(&buf, 2)
	require.NoError(t, view.Render(3, dirs(5)))

	frame := buf.String()
	assert.Contains(t, frame, "/root/dir0")
	assert.Contains(t, frame, "/root/dir1")
	assert.NotContains(t, frame, "/root/dir2")
}

func TestNewClampsNegativeCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	view := render.New(&buf, -3)
	assert.Equal(t, 1, view.Height())

	require.NoError(t, view.Render(0, dirs(2)))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestCursorVisibility(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	view := render.New(&buf, 1)
	view.HideCursor()
	view.ShowCursor()

	assert.Equal(t, ansi.HideCursor+ansi.ShowCursor, buf.String())
}
