// Package watch delivers append notifications for tailed files using raw
// inotify and epoll.
package watch

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// Op identifies the kind of change observed on a watched path.
type Op int

const (
	// OpAppend means the file grew (or was rewritten in place).
	OpAppend Op = iota
	// OpCreate means a new name appeared in a watched directory.
	OpCreate
	// OpRotate means the watched file was deleted or moved away, as log
	// rotation does.
	OpRotate
)

// Event is one observed change.
type Event struct {
	Path string
	Op   Op
	Err  error
}

// Watcher tracks files and directories with inotify, multiplexed through
// epoll so the event loop can be stopped promptly.
type Watcher struct {
	inotifyFd int
	epollFd   int
	done      chan struct{}

	mu      sync.Mutex
	watches map[int]string   // wd -> path
	paths   map[string]int   // path -> wd
	offsets map[string]int64 // path -> next read offset
}

// New creates a Watcher.
func New() (*Watcher, error) {
	ifd, err := unix.InotifyInit1(unix.IN_CLOEXEC | unix.IN_NONBLOCK)
	if err != nil {
		return nil, fmt.Errorf("inotify_init1: %w", err)
	}

	efd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		unix.Close(ifd)
		return nil, fmt.Errorf("epoll_create1: %w", err)
	}

	event := unix.EpollEvent{
		Events: unix.EPOLLIN,
		Fd:     int32(ifd),
	}
	if err := unix.EpollCtl(efd, unix.EPOLL_CTL_ADD, ifd, &event); err != nil {
		unix.Close(efd)
		unix.Close(ifd)
		return nil, fmt.Errorf("epoll_ctl: %w", err)
	}

	return &Watcher{
		inotifyFd: ifd,
		epollFd:   efd,
		done:      make(chan struct{}),
		watches:   make(map[int]string),
		paths:     make(map[string]int),
		offsets:   make(map[string]int64),
	}, nil
}

// Add starts watching path. Files are tailed from their current end;
// directories report names created or moved into them.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.watch(abs); err != nil {
		return err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		w.mu.Lock()
		w.offsets[abs] = info.Size()
		w.mu.Unlock()
	}
	return nil
}

// Rearm re-attaches a rotated file and rewinds so the next ReadAppended
// starts at the beginning of the new file.
func (w *Watcher) Rearm(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	delete(w.offsets, abs)
	w.mu.Unlock()
	return w.watch(abs)
}

// Forget drops the watch and tracked offset for path.
func (w *Watcher) Forget(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if wd, ok := w.paths[abs]; ok {
		unix.InotifyRmWatch(w.inotifyFd, uint32(wd))
		delete(w.watches, wd)
		delete(w.paths, abs)
	}
	delete(w.offsets, abs)
}

func (w *Watcher) watch(abs string) error {
	mask := uint32(unix.IN_MODIFY | unix.IN_CREATE | unix.IN_MOVED_TO | unix.IN_MOVE_SELF | unix.IN_DELETE_SELF)

	wd, err := unix.InotifyAddWatch(w.inotifyFd, abs, mask)
	if err != nil {
		return fmt.Errorf("inotify_add_watch %s: %w", abs, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if old, ok := w.paths[abs]; ok && old != wd {
		delete(w.watches, old)
	}
	w.watches[wd] = abs
	w.paths[abs] = wd
	return nil
}

// Events returns the event channel. The loop runs until Close is called;
// call Events once per Watcher.
func (w *Watcher) Events() <-chan Event {
	ch := make(chan Event, 64)
	go func() {
		defer close(ch)
		buf := make([]byte, 4096)
		events := make([]unix.EpollEvent, 1)

		for {
			select {
			case <-w.done:
				return
			default:
			}

			// Poll with a timeout so done is rechecked promptly.
			n, err := unix.EpollWait(w.epollFd, events, 100)
			if err != nil {
				if err == unix.EINTR {
					continue
				}
				ch <- Event{Err: fmt.Errorf("epoll_wait: %w", err)}
				return
			}
			if n == 0 {
				continue
			}

			nbytes, err := unix.Read(w.inotifyFd, buf)
			if err != nil {
				if err == unix.EAGAIN {
					continue
				}
				ch <- Event{Err: fmt.Errorf("read inotify: %w", err)}
				return
			}

			w.parseEvents(buf[:nbytes], ch)
		}
	}()
	return ch
}

// inotify event header layout:
//
//	int32  wd       (offset 0)
//	uint32 mask     (offset 4)
//	uint32 cookie   (offset 8)
//	uint32 len      (offset 12)
//	char   name[]   (offset 16)
const inotifyEventSize = 16

func (w *Watcher) parseEvents(buf []byte, ch chan<- Event) {
	offset := 0
	for offset+inotifyEventSize <= len(buf) {
		wd := int32(binary.LittleEndian.Uint32(buf[offset:]))
		mask := binary.LittleEndian.Uint32(buf[offset+4:])
		nameLen := int(binary.LittleEndian.Uint32(buf[offset+12:]))

		var name string
		if nameLen > 0 {
			nameStart := offset + inotifyEventSize
			nameEnd := nameStart + nameLen
			if nameEnd > len(buf) {
				break
			}
			nameBytes := buf[nameStart:nameEnd]
			// NUL padding follows the name.
			for i, b := range nameBytes {
				if b == 0 {
					nameBytes = nameBytes[:i]
					break
				}
			}
			name = string(nameBytes)
		}

		offset += inotifyEventSize + nameLen

		w.mu.Lock()
		dirPath := w.watches[int(wd)]
		if mask&unix.IN_IGNORED != 0 {
			// Kernel dropped the watch (deletion or explicit removal).
			delete(w.watches, int(wd))
			if w.paths[dirPath] == int(wd) {
				delete(w.paths, dirPath)
			}
		}
		w.mu.Unlock()

		path := dirPath
		if name != "" {
			path = filepath.Join(dirPath, name)
		}

		switch {
		case mask&unix.IN_CREATE != 0 || mask&unix.IN_MOVED_TO != 0:
			ch <- Event{Path: path, Op: OpCreate}
		case mask&unix.IN_MODIFY != 0:
			ch <- Event{Path: path, Op: OpAppend}
		case mask&unix.IN_DELETE_SELF != 0 || mask&unix.IN_MOVE_SELF != 0:
			ch <- Event{Path: path, Op: OpRotate}
		}
	}
}

// ReadAppended returns the bytes written to path since the previous call.
// A shrunken file is treated as truncation: the offset rewinds and the
// whole current content is returned.
func (w *Watcher) ReadAppended(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Open(abs, unix.O_RDONLY|unix.O_NOATIME, 0)
	if err != nil {
		fd, err = unix.Open(abs, unix.O_RDONLY, 0)
		if err != nil {
			return nil, err
		}
	}
	defer unix.Close(fd)

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, err
	}

	w.mu.Lock()
	lastOffset := w.offsets[abs]
	w.mu.Unlock()
	newSize := stat.Size

	if newSize < lastOffset {
		lastOffset = 0
	}
	toRead := int(newSize - lastOffset)
	if toRead == 0 {
		return nil, nil
	}

	buf := make([]byte, toRead)
	n, err := unix.Pread(fd, buf, lastOffset)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.offsets[abs] = lastOffset + int64(n)
	w.mu.Unlock()
	return buf[:n], nil
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	unix.Close(w.epollFd)
	return unix.Close(w.inotifyFd)
}
