package scan

import (
	"bufio"
	"io"

	"github.com/voluta/voluta/internal/matcher"
)

// LineSpan is an occurrence located by line: a 1-based line number and byte
// offsets relative to the first byte of that line.
type LineSpan struct {
	Line    int
	Start   int
	End     int
	Pattern int
}

const lineBufSize = 64 << 10

// Lines scans r one line at a time. A line includes its trailing newline,
// so a pattern ending in '\n' can still match; a final line without a
// terminator is scanned as is, and a trailing terminator does not open an
// empty extra line. Lines longer than the read buffer are accumulated
// before scanning.
func Lines(idx *matcher.Index, r io.Reader) ([]LineSpan, error) {
	br := bufio.NewReaderSize(r, lineBufSize)
	var out []LineSpan
	var long []byte
	lineNo := 0
	for {
		chunk, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			long = append(long, chunk...)
			continue
		}
		if err != nil && err != io.EOF {
			return nil, err
		}

		line := chunk
		if len(long) > 0 {
			long = append(long, chunk...)
			line = long
		}
		if len(line) > 0 {
			lineNo++
			out = append(out, scanLine(idx, line, lineNo)...)
		}
		long = long[:0]

		if err == io.EOF {
			return out, nil
		}
	}
}

// scanLine judges the candidates of a single line. The non-overlapping walk
// restarts on every line, matching what scanning each line as its own
// corpus would do.
func scanLine(idx *matcher.Index, line []byte, lineNo int) []LineSpan {
	var out []LineSpan
	resume := 0
	for _, sp := range idx.FindAll(line) {
		if !idx.Overlapping() {
			if sp.Start < resume {
				continue
			}
			resume = sp.End
		}
		if !idx.OnBoundary(line, sp.Start, sp.End) {
			continue
		}
		out = append(out, LineSpan{Line: lineNo, Start: sp.Start, End: sp.End, Pattern: sp.Pattern})
	}
	return out
}
