package dirtop

import (
	"cmp"
	"container/heap"
	"slices"
)

// compareDirs orders larger sizes first, then paths ascending.
func compareDirs(a, b DirSize) int {
	if c := cmp.Compare(b.Size, a.Size); c != 0 {
		return c
	}

	return cmp.Compare(a.Path, b.Path)
}

// candidates is a heap yielding directories in compareDirs order.
type candidates []DirSize

func (c candidates) Len() int           { return len(c) }
func (c candidates) Less(i, j int) bool { return compareDirs(c[i], c[j]) < 0 }
func (c candidates) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }

func (c *candidates) Push(x any) { *c = append(*c, x.(DirSize)) } //nolint:forcetypeassert // Only DirSize is pushed

func (c *candidates) Pop() any {
	old := *c
	last := old[len(old)-1]
	*c = old[:len(old)-1]

	return last
}

// SelectTop returns at most k directories from snapshot, largest first.
//
// Equal sizes are ordered by path ascending so the result is deterministic.
// With suppressAncestors set, a directory already selected is dropped as soon
// as one of its descendants is selected, leaving only the deepest large
// directories. The snapshot itself is not modified.
//
// Candidates are popped from a heap in order, so only as many as needed are
// ordered: O(n + m log n) for m popped candidates instead of a full sort.
func SelectTop(snapshot []DirSize, k int, suppressAncestors bool) []DirSize {
	if k <= 0 {
		return []DirSize{}
	}

	pending := candidates(slices.Clone(snapshot))
	heap.Init(&pending)

	top := make([]DirSize, 0, min(k, len(pending)))

	for pending.Len() > 0 && len(top) < k {
		candidate := heap.Pop(&pending).(DirSize) //nolint:forcetypeassert // Heap holds DirSize only

		if suppressAncestors {
			top = slices.DeleteFunc(top, func(kept DirSize) bool {
				return IsAncestor(kept.Path, candidate.Path)
			})
		}

		top = append(top, candidate)
	}

	return top
}
