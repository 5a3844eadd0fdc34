package input

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// MapLoader loads files by memory-mapping them with sequential-access
// kernel hints, prefaulting the pages up front.
type MapLoader struct{}

// NewMapLoader creates a new MapLoader.
func NewMapLoader() *MapLoader {
	return &MapLoader{}
}

func (l *MapLoader) Load(path string) (Data, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return Data{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return Data{}, nil
	}
	return loadMapped(fd, size)
}

// loadMapped maps an already-open fd of known size, taking ownership of the
// fd. When the kernel refuses the mapping it falls back to a buffered read.
func loadMapped(fd int, size int64) (Data, error) {
	unix.Fadvise(fd, 0, size, unix.FADV_SEQUENTIAL)

	mem, err := syscall.Mmap(fd, 0, int(size), syscall.PROT_READ, syscall.MAP_PRIVATE|syscall.MAP_POPULATE)
	if err != nil {
		return loadBuffered(fd, size)
	}
	unix.Madvise(mem, unix.MADV_SEQUENTIAL)

	return Data{
		Bytes: mem,
		close: func() error {
			unix.Madvise(mem, unix.MADV_DONTNEED)
			syscall.Munmap(mem)
			unix.Close(fd)
			return nil
		},
	}, nil
}

// NewAdaptiveLoader returns a loader that buffers files smaller than
// threshold bytes and maps everything else. A threshold of zero or less
// selects DefaultMapThreshold.
func NewAdaptiveLoader(threshold int64) Loader {
	if threshold <= 0 {
		threshold = DefaultMapThreshold
	}
	return &adaptiveLoader{threshold: threshold}
}

type adaptiveLoader struct {
	threshold int64
}

func (l *adaptiveLoader) Load(path string) (Data, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return Data{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return Data{}, nil
	}
	if size >= l.threshold {
		return loadMapped(fd, size)
	}
	return loadBuffered(fd, size)
}
