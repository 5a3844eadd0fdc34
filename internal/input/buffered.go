package input

import (
	"sync"

	"golang.org/x/sys/unix"
)

// bufPool reuses read buffers across files. Stored as *[]byte so a grown
// backing array survives the round trip through the pool.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64<<10)
		return &b
	},
}

// BufferedLoader reads whole files with pread into pooled buffers.
type BufferedLoader struct{}

// NewBufferedLoader creates a new BufferedLoader.
func NewBufferedLoader() *BufferedLoader {
	return &BufferedLoader{}
}

func (l *BufferedLoader) Load(path string) (Data, error) {
	fd, size, err := openSized(path)
	if err != nil {
		return Data{}, err
	}
	if size == 0 {
		unix.Close(fd)
		return Data{}, nil
	}
	return loadBuffered(fd, size)
}

// loadBuffered reads everything from an already-open fd into a pooled
// buffer, taking ownership of the fd.
func loadBuffered(fd int, size int64) (Data, error) {
	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}

	total := 0
	for total < int(size) {
		n, err := unix.Pread(fd, buf[total:], int64(total))
		if err != nil {
			unix.Close(fd)
			*bp = buf
			bufPool.Put(bp)
			return Data{}, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	unix.Close(fd)

	return Data{
		Bytes: buf[:total],
		close: func() error {
			*bp = buf
			bufPool.Put(bp)
			return nil
		},
	}, nil
}
