//go:build !unix

package dirtop

import (
	"fmt"
	"io/fs"
	"os"
)

// device is a placeholder on platforms without device numbers.
type device struct{}

func deviceOfPath(path string) (device, error) {
	if _, err := os.Stat(path); err != nil {
		return device{}, fmt.Errorf("accessing path %q: %w", path, err)
	}

	return device{}, nil
}

func sameDevice(device, fs.FileInfo) bool {
	return true
}
