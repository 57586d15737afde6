package dirtop

import (
	"time"
)

// DefaultLines is the number of directories shown when no count is given
// and the terminal height is unknown or larger.
const DefaultLines = 28

// DirSize represents a single directory path and its cumulative size.
type DirSize struct {
	// Path is the directory path.
	Path string `json:"path"`
	// Size is the cumulative size in bytes.
	Size uint64 `json:"size"`
}

// Entry is a single item produced by a Walker.
type Entry struct {
	// Path is the entry path, rooted at the walk root.
	Path string
	// Size is the size contributed by the entry in bytes.
	Size uint64
	// IsDir reports whether the entry is a directory.
	IsDir bool
	// Err is set when the entry could not be read. Such entries contribute nothing.
	Err error
}

// Result holds the outcome of a completed scan.
type Result struct {
	// Root is the scanned directory.
	Root string `json:"root"`
	// Entries is the total number of entries processed.
	Entries uint64 `json:"entries"`
	// Directories is the number of directories known to the aggregator.
	Directories int `json:"directories"`
	// TotalBytes is the cumulative size of the root directory.
	TotalBytes uint64 `json:"total_bytes"`
	// Errors is the number of entries skipped because they could not be read.
	Errors int64 `json:"errors"`
	// Top contains the largest directories, largest first.
	Top []DirSize `json:"top"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
	// Lines is the number of top directories requested.
	Lines int `json:"lines"`
}

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Interval is the time between live refreshes (0 = render once at the end).
	Interval time.Duration
	// Lines is the number of top directories to display.
	Lines int
	// NoParent hides directories that are ancestors of another displayed directory.
	NoParent bool
	// Depth is the maximum traversal depth (0=unlimited).
	Depth int
	// DirSize indicates whether a directory's own metadata size is counted.
	DirSize bool
	// Output represents output format (live, table or json).
	Output string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool
}
