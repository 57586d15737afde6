// Package dirtop provides incremental directory size aggregation and top-K selection.
//
// It walks a directory tree on a single filesystem using fastwalk with a single
// worker, folds every entry's size into the cumulative size of each ancestor
// directory, and periodically hands the largest directories to a Renderer
// while the walk is still in progress.
package dirtop
