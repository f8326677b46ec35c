//go:build unix

package csvcore

import (
	"fmt"
	"os"
	"syscall"
)

// MmapFile memory-maps filename for reading and returns the mapped
// bytes plus a cleanup function that must be called to unmap it. On
// Unix this is a real mmap (fastparser/mmap_unix.go); combined with
// ParseZeroCopy or ParseParallel, this lets the OS page a large CSV
// file in on demand instead of reading it all upfront.
//
// Do not use the returned slice after calling cleanup.
func MmapFile(filename string) ([]byte, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("csvcore: open %s: %w", filename, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("csvcore: stat %s: %w", filename, err)
	}

	size := stat.Size()
	if size == 0 {
		return []byte{}, func() { f.Close() }, nil
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("csvcore: mmap %s: %w", filename, err)
	}

	cleanup := func() {
		_ = syscall.Munmap(data)
		f.Close()
	}
	return data, cleanup, nil
}
