package output

import "bytes"

// Cursor resolves ascending byte offsets to the line containing them.
// Matches arrive in corpus order, so the cursor only ever moves forward:
// small gaps are walked line by line, large gaps are jumped with a newline
// count over the skipped region.
type Cursor struct {
	data      []byte
	lineNum   int // 1-based number of the current line
	lineStart int // offset of the current line's first byte
	lineEnd   int // offset of its '\n', or len(data)
}

var newlineByte = []byte{'\n'}

// NewCursor returns a cursor positioned on the first line of data.
func NewCursor(data []byte) *Cursor {
	return NewCursorAt(data, 1)
}

// NewCursorAt is NewCursor with the first line numbered startLine, for data
// that continues an earlier stream.
func NewCursorAt(data []byte, startLine int) *Cursor {
	end := len(data)
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		end = i
	}
	return &Cursor{data: data, lineNum: startLine, lineEnd: end}
}

// Line advances to the line containing pos and returns it without its
// terminator, together with the offset of its first byte and its 1-based
// number. pos must not decrease between calls.
func (c *Cursor) Line(pos int) (line []byte, start, lineNum int) {
	if pos < c.lineEnd {
		return c.data[c.lineStart:c.lineEnd], c.lineStart, c.lineNum
	}

	// Walk nearby positions; Count plus LastIndexByte only pays off on
	// bigger jumps.
	if pos-c.lineEnd <= 256 {
		for pos >= c.lineEnd && c.lineEnd < len(c.data) {
			c.lineStart = c.lineEnd + 1
			c.lineNum++
			if i := bytes.IndexByte(c.data[c.lineStart:], '\n'); i >= 0 {
				c.lineEnd = c.lineStart + i
			} else {
				c.lineEnd = len(c.data)
			}
		}
		return c.data[c.lineStart:c.lineEnd], c.lineStart, c.lineNum
	}

	gapStart := c.lineEnd
	c.lineNum += bytes.Count(c.data[gapStart:pos], newlineByte)

	start = c.lineStart
	if i := bytes.LastIndexByte(c.data[gapStart:pos], '\n'); i >= 0 {
		start = gapStart + i + 1
	}

	end := len(c.data)
	if i := bytes.IndexByte(c.data[pos:], '\n'); i >= 0 {
		end = pos + i
	}

	c.lineStart = start
	c.lineEnd = end
	return c.data[c.lineStart:c.lineEnd], c.lineStart, c.lineNum
}
