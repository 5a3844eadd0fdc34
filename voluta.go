// Package voluta finds every occurrence of a fixed set of byte patterns in
// corpora of any size. One compiled Matcher can scan an in-memory buffer, a
// memory-mapped file sequentially or with a worker pool, a pushed or pulled
// byte stream, or an io.Reader line by line; all strategies report the same
// matches for the same bytes and flags.
package voluta

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/voluta/voluta/internal/input"
	"github.com/voluta/voluta/internal/matcher"
	"github.com/voluta/voluta/internal/scan"
)

// DefaultChunkSize is the window stride used when a chunk or buffer size of
// zero or less is given.
const DefaultChunkSize = 8 << 20

// Matcher is an immutable compiled pattern set. It is safe for concurrent
// use; every Find method may run in parallel with the others.
type Matcher struct {
	idx *matcher.Index
}

// New compiles patterns into a Matcher. Empty pattern strings are dropped;
// if nothing remains, New fails with ErrNoPatterns. By default matching is
// overlapping, ASCII case-insensitive, and not anchored to word boundaries.
func New(patterns []string, opts ...Option) (*Matcher, error) {
	s := settings{overlapping: true, caseInsensitive: true}
	for _, opt := range opts {
		opt(&s)
	}
	idx, err := matcher.NewIndex(patterns, s.overlapping, s.caseInsensitive, s.wholeWord)
	if err != nil {
		return nil, err
	}
	return &Matcher{idx: idx}, nil
}

// Patterns returns the compiled patterns in identity order.
func (m *Matcher) Patterns() []string {
	return slices.Clone(m.idx.Patterns())
}

// MaxPatternLength returns the byte length of the longest pattern.
func (m *Matcher) MaxPatternLength() int {
	return m.idx.MaxLen()
}

// FindAll scans data in a single pass and returns the matches in corpus
// order. The result is never nil.
func (m *Matcher) FindAll(data []byte) []Match {
	return m.translate(scan.Bytes(m.idx, data))
}

// FindAllChunked scans data window by window with the given stride. The
// result is identical to FindAll for every stride; chunk values of zero or
// less select DefaultChunkSize.
func (m *Matcher) FindAllChunked(data []byte, chunk int) []Match {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	return m.translate(scan.Chunked(m.idx, data, chunk))
}

// FindAllParallel scans the windows of data with a pool of workers and
// returns exactly what FindAllChunked would. workers of zero or less
// selects the machine's CPU count.
func (m *Matcher) FindAllParallel(data []byte, chunk, workers int) []Match {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	return m.translate(scan.Parallel(m.idx, data, chunk, workers))
}

// FindFile memory-maps the file at path and scans it sequentially.
func (m *Matcher) FindFile(path string, chunk int) ([]Match, error) {
	d, err := input.NewMapLoader().Load(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return m.FindAllChunked(d.Bytes, chunk), nil
}

// FindFileParallel memory-maps the file at path and scans its windows with
// a pool of workers.
func (m *Matcher) FindFileParallel(path string, chunk, workers int) ([]Match, error) {
	d, err := input.NewMapLoader().Load(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return m.FindAllParallel(d.Bytes, chunk, workers), nil
}

// FindReader streams r through the matcher in bufSize reads, holding at
// most bufSize plus one pattern length of the stream in memory. bufSize
// values of zero or less select DefaultChunkSize.
func (m *Matcher) FindReader(r io.Reader, bufSize int) ([]Match, error) {
	if bufSize <= 0 {
		bufSize = DefaultChunkSize
	}
	spans, err := scan.Reader(m.idx, r, bufSize)
	if err != nil {
		return nil, err
	}
	return m.translate(spans), nil
}

// FindFileStream opens the file at path and scans it as a stream, without
// mapping or materializing it.
func (m *Matcher) FindFileStream(path string, bufSize int) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return m.FindReader(f, bufSize)
}

// FindLines scans data line by line. Offsets in the result are relative to
// each line; a pattern containing a newline anywhere but its final byte
// cannot match in this mode.
func (m *Matcher) FindLines(data []byte) []LineMatch {
	spans, _ := scan.Lines(m.idx, bytes.NewReader(data))
	return m.translateLines(spans)
}

// FindReaderLines scans r line by line.
func (m *Matcher) FindReaderLines(r io.Reader) ([]LineMatch, error) {
	spans, err := scan.Lines(m.idx, r)
	if err != nil {
		return nil, err
	}
	return m.translateLines(spans), nil
}

// Stream returns a scanner for one logical byte stream pushed to it in
// arbitrary chunks.
func (m *Matcher) Stream() *Streamer {
	return &Streamer{m: m, s: scan.NewStreamer(m.idx)}
}

// Streamer scans a stream fed to it chunk by chunk, reporting exactly what
// FindAll would report for the concatenated bytes. A Streamer is not safe
// for concurrent use.
type Streamer struct {
	m *Matcher
	s *scan.Streamer
	n int
}

// Feed appends p to the stream and returns the matches newly confirmed by
// it, in corpus order. A match ending exactly at the stream edge is
// withheld until the next Feed or Flush settles what follows it. Feed
// panics if called after Flush.
func (st *Streamer) Feed(p []byte) []Match {
	st.s.Feed(p)
	return st.drain()
}

// Flush ends the stream and returns the matches that were still pending at
// its edge. Calling Flush again returns no matches.
func (st *Streamer) Flush() []Match {
	st.s.Flush()
	return st.drain()
}

func (st *Streamer) drain() []Match {
	spans := st.s.Spans()
	out := st.m.translate(spans[st.n:])
	st.n = len(spans)
	return out
}
