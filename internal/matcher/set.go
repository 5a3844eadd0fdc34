package matcher

// Set collects spans while suppressing exact duplicates, which windowed
// scans produce whenever an occurrence lies inside the overlap zone shared
// by two windows. Insertion order is preserved and defines output order.
type Set struct {
	seen  map[Span]struct{}
	spans []Span
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{seen: make(map[Span]struct{})}
}

// Add inserts sp and reports whether it was new. A span equal to one
// already present is silently dropped.
func (s *Set) Add(sp Span) bool {
	if _, dup := s.seen[sp]; dup {
		return false
	}
	s.seen[sp] = struct{}{}
	s.spans = append(s.spans, sp)
	return true
}

// Spans returns the accepted spans in insertion order. The slice is owned
// by the set; callers must not modify it.
func (s *Set) Spans() []Span { return s.spans }

// Len returns the number of accepted spans.
func (s *Set) Len() int { return len(s.spans) }
