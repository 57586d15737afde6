package dirtop

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// Walker produces the entries below root, calling fn once per entry.
// Returning an error from fn stops the walk and is returned by Walk.
type Walker interface {
	Walk(ctx context.Context, root string, fn func(Entry) error) error
}

// FastWalker walks a single filesystem with fastwalk.
//
// It runs with one worker, so fn is never called concurrently and every
// directory is reported before its contents. Directories on another device
// than root are skipped along with everything below them.
type FastWalker struct {
	// Depth is the maximum traversal depth (0=unlimited).
	Depth int
	// DirSize reports a directory's own metadata size instead of 0.
	DirSize bool
}

// Walk implements Walker. The root itself is not reported.
//
//nolint:varnamelen // d is standard for DirEntry
func (w FastWalker) Walk(ctx context.Context, root string, fn func(Entry) error) error {
	root = filepath.Clean(root)

	rootDevice, err := deviceOfPath(root)
	if err != nil {
		return err
	}

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		Sort:       fastwalk.SortLexical,
		NumWorkers: 1,
	}

	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(Entry{Path: path, Err: err})
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if filepath.Clean(path) == root {
			return nil
		}

		if w.Depth > 0 && calculateDepth(path, root) > w.Depth {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fn(Entry{Path: path, Err: err})
		}

		if d.IsDir() && !sameDevice(rootDevice, info) {
			return filepath.SkipDir
		}

		entry := Entry{Path: path, IsDir: d.IsDir()}

		switch {
		case info.Mode().IsRegular():
			entry.Size = uint64(info.Size()) //nolint:gosec // Size is never negative
		case entry.IsDir && w.DirSize:
			entry.Size = uint64(info.Size()) //nolint:gosec // Size is never negative
		}

		return fn(entry)
	})
}
