package scan

import (
	"io"

	"github.com/voluta/voluta/internal/matcher"
)

// Streamer matches a corpus that arrives as a sequence of chunks, reporting
// exactly what a single scan over the concatenated bytes would report. It
// keeps the tail of the stream, one byte more than the longest pattern, so
// an occurrence crossing a chunk seam is seen whole in the next round and an
// occurrence deferred at the stream edge never begins on the first kept
// byte, where its left context would already be gone.
type Streamer struct {
	idx      *matcher.Index
	c        *collector
	win      []byte // kept tail of the stream; Feed appends to it
	streamed int    // total bytes fed
	flushed  bool
}

// NewStreamer returns a streamer at stream offset zero.
func NewStreamer(idx *matcher.Index) *Streamer {
	return &Streamer{idx: idx, c: newCollector(idx)}
}

// Feed appends data to the stream and judges every occurrence whose
// surrounding context is now complete. An occurrence ending exactly at the
// stream edge stays pending until the next Feed or Flush shows what follows
// it. Feeding an empty slice does nothing. Feed panics once Flush has run.
func (s *Streamer) Feed(data []byte) {
	if s.flushed {
		panic("voluta: Feed after Flush")
	}
	if len(data) == 0 {
		return
	}

	s.win = append(s.win, data...)
	wEnd := s.streamed + len(data)
	s.scan(wEnd, false)
	s.streamed = wEnd

	if keep := s.idx.MaxLen() + 1; len(s.win) > keep {
		copy(s.win, s.win[len(s.win)-keep:])
		s.win = s.win[:keep]
	}
}

// Flush judges the occurrences still pending at the stream edge. The stream
// is complete afterwards; calling Flush again does nothing.
func (s *Streamer) Flush() {
	if s.flushed {
		return
	}
	s.flushed = true
	s.scan(s.streamed, true)
	s.win = nil
}

// Spans returns the matches accepted so far, in corpus order. The slice is
// shared with the streamer; callers must not modify it.
func (s *Streamer) Spans() []matcher.Span { return s.c.spans() }

func (s *Streamer) scan(wEnd int, final bool) {
	wStart := wEnd - len(s.win)
	for _, sp := range s.idx.FindAll(s.win) {
		g := matcher.Span{
			Start:   wStart + sp.Start,
			End:     wStart + sp.End,
			Pattern: sp.Pattern,
		}
		if g.Start == wStart && wStart > 0 {
			// Judged in an earlier round; the byte before it is gone.
			continue
		}
		if !final && g.End == wEnd {
			// The byte after it has not arrived yet.
			continue
		}
		s.c.add(s.win, wStart, g)
	}
}

// Reader feeds r through a streamer in bufSize reads and returns the
// matches for the whole stream.
func Reader(idx *matcher.Index, r io.Reader, bufSize int) ([]matcher.Span, error) {
	s := NewStreamer(idx)
	buf := make([]byte, bufSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.Feed(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	s.Flush()
	return s.Spans(), nil
}
