package dirtop

import (
	"path/filepath"
)

// node is one directory in the aggregator arena.
type node struct {
	path   string
	parent int // index into Aggregator.nodes, -1 for the root
	size   uint64
}

// Aggregator maps every known directory to its cumulative size.
//
// Directories are stored in an arena linked by parent indices. Recording an
// entry creates any missing ancestor on the way down from the root, so totals
// are independent of the order in which entries arrive.
// An Aggregator is not safe for concurrent use.
type Aggregator struct {
	root    string
	nodes   []node
	index   map[string]int
	entries uint64
}

// NewAggregator creates an aggregator holding only root, with size 0.
func NewAggregator(root string) *Aggregator {
	root = filepath.Clean(root)

	return &Aggregator{
		root:  root,
		nodes: []node{{path: root, parent: -1}},
		index: map[string]int{root: 0},
	}
}

// Root returns the cleaned root path.
func (a *Aggregator) Root() string {
	return a.root
}

// RecordEntry folds one walked entry into the totals.
//
// A directory's size is added to itself and every ancestor; a file's size is
// added to its parent directory and every ancestor. Each entry is therefore
// counted once per directory on its chain. Paths outside the root are ignored
// and reported with false.
func (a *Aggregator) RecordEntry(path string, size uint64, isDir bool) bool {
	path = filepath.Clean(path)

	dir := path
	if !isDir {
		if path == a.root {
			return false
		}

		dir = filepath.Dir(path)
	}

	idx, ok := a.resolve(dir)
	if !ok {
		return false
	}

	a.entries++

	for i := idx; i >= 0; i = a.nodes[i].parent {
		a.nodes[i].size += size
	}

	return true
}

// resolve returns the arena index for dir, creating it and any missing ancestors.
func (a *Aggregator) resolve(dir string) (int, bool) {
	if idx, ok := a.index[dir]; ok {
		return idx, true
	}

	rel, ok := relative(a.root, dir)
	if !ok {
		return 0, false
	}

	idx := 0
	path := a.root

	for _, name := range components(rel) {
		path = filepath.Join(path, name)

		child, ok := a.index[path]
		if !ok {
			child = len(a.nodes)
			a.nodes = append(a.nodes, node{path: path, parent: idx})
			a.index[path] = child
		}

		idx = child
	}

	return idx, true
}

// Size returns the cumulative size of path, if it is a known directory.
func (a *Aggregator) Size(path string) (uint64, bool) {
	idx, ok := a.index[filepath.Clean(path)]
	if !ok {
		return 0, false
	}

	return a.nodes[idx].size, true
}

// Len returns the number of known directories, root included.
func (a *Aggregator) Len() int {
	return len(a.nodes)
}

// Entries returns the number of recorded entries.
func (a *Aggregator) Entries() uint64 {
	return a.entries
}

// Snapshot copies the current directory sizes in arena order.
func (a *Aggregator) Snapshot() []DirSize {
	out := make([]DirSize, len(a.nodes))
	for i, n := range a.nodes {
		out[i] = DirSize{Path: n.path, Size: n.size}
	}

	return out
}
