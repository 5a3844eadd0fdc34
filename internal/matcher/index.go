package matcher

import (
	"errors"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// ErrNoPatterns is returned when construction is left with no non-empty
// patterns to compile.
var ErrNoPatterns = errors.New("voluta: pattern set is empty")

// Span is a single candidate occurrence: a half-open byte interval and the
// id of the pattern that produced it. Coordinates are local to whatever
// buffer was scanned until a strategy translates them to corpus-global
// offsets.
type Span struct {
	Start   int
	End     int
	Pattern int
}

// Index is a compiled, immutable pattern set. It owns the automaton, the
// original pattern strings (insertion order is pattern identity) and the
// matching flags. An Index is safe for concurrent use by any number of
// scan workers.
type Index struct {
	ac          ahocorasick.AhoCorasick
	patterns    []string
	maxLen      int
	overlapping bool
	wholeWord   bool
}

// NewIndex compiles patterns into an automaton. Empty strings are dropped
// before validation; if nothing remains the construction fails with
// ErrNoPatterns.
func NewIndex(patterns []string, overlapping, caseInsensitive, wholeWord bool) (*Index, error) {
	kept := make([]string, 0, len(patterns))
	maxLen := 0
	for _, p := range patterns {
		if p == "" {
			continue
		}
		kept = append(kept, p)
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoPatterns
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: caseInsensitive,
		MatchOnlyWholeWords:  false, // word boundaries are checked against corpus-global bytes, not here
		MatchKind:            ahocorasick.StandardMatch,
		DFA:                  true,
	})

	return &Index{
		ac:          builder.Build(kept),
		patterns:    kept,
		maxLen:      maxLen,
		overlapping: overlapping,
		wholeWord:   wholeWord,
	}, nil
}

// FindAll reports every automaton occurrence in buf, including occurrences
// that begin inside another, as buffer-local spans ordered by end offset.
// Mode interpretation (overlapping vs the non-overlapping partition) is the
// caller's job; emitting the full candidate set is what keeps windowed scans
// independent of where the window boundaries fall.
func (x *Index) FindAll(buf []byte) []Span {
	if len(buf) == 0 {
		return nil
	}
	var spans []Span
	it := x.ac.IterOverlappingByte(buf)
	for m := it.Next(); m != nil; m = it.Next() {
		spans = append(spans, Span{Start: m.Start(), End: m.End(), Pattern: m.Pattern()})
	}
	return spans
}

// Pattern returns the pattern string with the given id.
func (x *Index) Pattern(id int) string { return x.patterns[id] }

// Patterns returns the compiled pattern list. Callers must not modify it.
func (x *Index) Patterns() []string { return x.patterns }

// MaxLen returns the length of the longest pattern.
func (x *Index) MaxLen() int { return x.maxLen }

// Overlap returns the number of bytes consecutive windows must share so no
// occurrence straddling a window seam is lost.
func (x *Index) Overlap() int { return x.maxLen - 1 }

// Overlapping reports whether every occurrence is wanted, as opposed to the
// non-overlapping leftmost partition.
func (x *Index) Overlapping() bool { return x.overlapping }

// WholeWord reports whether occurrences must sit on word boundaries.
func (x *Index) WholeWord() bool { return x.wholeWord }
