package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes formatted output to a file descriptor using writev.
type Writer struct {
	fd int
}

// NewWriter creates a Writer over f, usually os.Stdout.
func NewWriter(f *os.File) *Writer {
	return &Writer{fd: int(f.Fd())}
}

// Write writes data fully, retrying short writes.
func (w *Writer) Write(data []byte) error {
	for len(data) > 0 {
		n, err := unix.Writev(w.fd, [][]byte{data})
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// OrderedWriter consumes results from parallel workers and writes them in
// sequence order, buffering whatever arrives early.
type OrderedWriter struct {
	w         *Writer
	formatter Formatter
	multiFile bool
	buf       []byte
}

// NewOrderedWriter creates an OrderedWriter.
func NewOrderedWriter(w *Writer, f Formatter, multiFile bool) *OrderedWriter {
	return &OrderedWriter{w: w, formatter: f, multiFile: multiFile}
}

// WriteOrdered drains results until the channel closes. Sequence numbers
// start at 1 and must be dense. onResult, when set, sees every result as it
// arrives, before ordering.
func (ow *OrderedWriter) WriteOrdered(results <-chan Result, onResult func(Result)) {
	nextSeq := 1
	pending := make(map[int]Result)

	for r := range results {
		if onResult != nil {
			onResult(r)
		}

		if r.Seq != nextSeq {
			pending[r.Seq] = r
			continue
		}
		ow.write(r)
		nextSeq++
		for {
			p, ok := pending[nextSeq]
			if !ok {
				break
			}
			ow.write(p)
			delete(pending, nextSeq)
			nextSeq++
		}
	}
}

func (ow *OrderedWriter) write(r Result) {
	if r.Err == nil {
		ow.buf = ow.formatter.Format(ow.buf[:0], r, ow.multiFile)
		ow.w.Write(ow.buf)
	}
	if r.Release != nil {
		r.Release()
	}
}
