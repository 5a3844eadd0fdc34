package voluta

type settings struct {
	overlapping     bool
	caseInsensitive bool
	wholeWord       bool
}

// Option adjusts how a Matcher is built.
type Option func(*settings)

// WithOverlapping controls whether every occurrence is reported, including
// occurrences that begin inside another (the default), or only the
// leftmost non-overlapping walk.
func WithOverlapping(on bool) Option {
	return func(s *settings) { s.overlapping = on }
}

// WithCaseInsensitive controls ASCII case folding. On by default.
func WithCaseInsensitive(on bool) Option {
	return func(s *settings) { s.caseInsensitive = on }
}

// WithWholeWord restricts matches to occurrences flanked by non-word bytes
// or the corpus edges. A word byte is ASCII alphanumeric or underscore.
// Off by default.
func WithWholeWord(on bool) Option {
	return func(s *settings) { s.wholeWord = on }
}
