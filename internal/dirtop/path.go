package dirtop

import (
	"path/filepath"
	"strings"
)

const parentDir = ".."

// relative returns path relative to root, or false if path lies outside root.
// Paths are compared component by component, so "/foo" does not contain "/foobar".
func relative(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}

	if rel == parentDir || strings.HasPrefix(rel, parentDir+string(filepath.Separator)) {
		return "", false
	}

	return rel, true
}

// components splits a relative path into its elements. "." yields none.
func components(rel string) []string {
	if rel == "." || rel == "" {
		return nil
	}

	return strings.Split(rel, string(filepath.Separator))
}

// IsAncestor reports whether p is a strict ancestor of q.
func IsAncestor(p, q string) bool {
	rel, ok := relative(filepath.Clean(p), filepath.Clean(q))

	return ok && rel != "."
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	rel, ok := relative(root, path)
	if !ok {
		return 0
	}

	return len(components(rel))
}
