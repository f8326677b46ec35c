//go:build !unix

package csvcore

import (
	"fmt"
	"os"
)

// MmapFile reads filename into memory. Non-Unix platforms fall back to
// a plain read (fastparser/mmap_other.go); the cleanup function is
// kept for API parity with the Unix build.
func MmapFile(filename string) ([]byte, func(), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("csvcore: read %s: %w", filename, err)
	}
	return data, func() {}, nil
}
