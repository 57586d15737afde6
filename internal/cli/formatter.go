package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirtop/internal/dirtop"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(stats *dirtop.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the scan result in human-readable table format.
// Directories are listed smallest first so the largest ends up next to the prompt.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(stats *dirtop.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nTop directories:\t\t")

	for i := len(stats.Top) - 1; i >= 0; i-- {
		d := stats.Top[i]
		pct := 0.0
		if stats.TotalBytes > 0 {
			pct = 100.0 * float64(d.Size) / float64(stats.TotalBytes)
		}
		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n", i+1, d.Path, humanize.Bytes(d.Size), pct)
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total entries:\t%s\n", humanize.Comma(int64(stats.Entries))) //nolint:gosec // Entry counts fit int64
	fmt.Fprintf(w, "Total directories:\t%d\n", stats.Directories)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n", humanize.Bytes(stats.TotalBytes), stats.TotalBytes)

	if stats.Errors > 0 {
		fmt.Fprintf(w, "Skipped entries:\t%d\n", stats.Errors)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}
