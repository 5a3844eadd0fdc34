// Package input loads corpora from the filesystem, either by reading them
// into pooled buffers or by memory-mapping them.
package input

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DefaultMapThreshold is the file size, in bytes, at which the adaptive
// loader switches from buffered reads to memory mapping.
const DefaultMapThreshold = 1 << 20

// Data is a loaded corpus. Close returns the backing memory to the kernel
// or to the buffer pool; the bytes must not be touched afterwards.
type Data struct {
	Bytes []byte
	close func() error
}

// Close releases the corpus. Safe on the zero value.
func (d Data) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// Loader loads a file into memory.
type Loader interface {
	Load(path string) (Data, error)
}

// openSized opens path read-only, trying O_NOATIME first, and returns the
// fd together with its fstat size. The file is opened and sized exactly
// once; no path-based stat.
func openSized(path string) (int, int64, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY, 0)
	}
	if err != nil {
		return -1, 0, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return -1, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return fd, stat.Size, nil
}
