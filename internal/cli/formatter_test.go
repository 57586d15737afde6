package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirtop/internal/dirtop"
)

func sampleResult() *dirtop.Result {
	return &dirtop.Result{
		Root:        "data",
		Entries:     1234,
		Directories: 3,
		TotalBytes:  2000,
		Errors:      2,
		Top: []dirtop.DirSize{
			{Path: "data", Size: 2000},
			{Path: "data/logs", Size: 1500},
		},
		Elapsed: 3 * time.Millisecond,
		Lines:   2,
	}
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, PrintJSON(sampleResult(), &buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "data", decoded["root"])
	assert.InDelta(t, 2000, decoded["total_bytes"], 0)
	assert.InDelta(t, 2, decoded["errors"], 0)

	top, ok := decoded["top"].([]any)
	require.True(t, ok)
	require.Len(t, top, 2)
	assert.Equal(t, map[string]any{"path": "data/logs", "size": 1500.0}, top[1])
}

func TestPrintTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, PrintTable(sampleResult(), &buf))

	out := buf.String()

	// Largest directory is printed last
	first := strings.Index(out, "2) 'data/logs'")
	second := strings.Index(out, "1) 'data'")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)

	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "2.0 kB (2000 bytes)")
	assert.Contains(t, out, "Skipped entries:")
}
