//go:build unix

package dirtop

import (
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// device identifies the filesystem an entry lives on.
type device struct {
	id    uint64
	known bool
}

func deviceOf(info fs.FileInfo) device {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return device{}
	}

	return device{id: uint64(stat.Dev), known: true} //nolint:unconvert,gosec // Dev width differs per platform
}

func deviceOfPath(path string) (device, error) {
	info, err := os.Stat(path)
	if err != nil {
		return device{}, fmt.Errorf("accessing path %q: %w", path, err)
	}

	return deviceOf(info), nil
}

// sameDevice reports whether info lives on root's filesystem.
// Unknown devices are treated as the same.
func sameDevice(root device, info fs.FileInfo) bool {
	other := deviceOf(info)
	if !root.known || !other.known {
		return true
	}

	return root.id == other.id
}
