package voluta

import (
	"github.com/voluta/voluta/internal/matcher"
	"github.com/voluta/voluta/internal/scan"
)

// Match is one accepted occurrence: a half-open byte range within the
// corpus and the pattern text that produced it.
type Match struct {
	Start   int
	End     int
	Pattern string
}

// LineMatch is one accepted occurrence located by line. Line numbers are
// 1-based; Start and End are relative to the first byte of the line, which
// includes its trailing newline.
type LineMatch struct {
	Line    int
	Start   int
	End     int
	Pattern string
}

// translate swaps the internal pattern ids for their pattern text.
func (m *Matcher) translate(spans []matcher.Span) []Match {
	out := make([]Match, len(spans))
	for i, sp := range spans {
		out[i] = Match{Start: sp.Start, End: sp.End, Pattern: m.idx.Pattern(sp.Pattern)}
	}
	return out
}

func (m *Matcher) translateLines(spans []scan.LineSpan) []LineMatch {
	out := make([]LineMatch, len(spans))
	for i, sp := range spans {
		out[i] = LineMatch{Line: sp.Line, Start: sp.Start, End: sp.End, Pattern: m.idx.Pattern(sp.Pattern)}
	}
	return out
}
