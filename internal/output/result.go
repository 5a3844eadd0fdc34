package output

import "github.com/voluta/voluta"

// Result is the outcome of scanning one file.
type Result struct {
	Path    string
	Seq     int
	Matches []voluta.Match
	// Data holds the corpus bytes so the formatter can place each match in
	// its line. Valid until Release is called.
	Data []byte
	// FirstLine numbers Data's first line when Data is a later slice of a
	// larger stream, as in tail mode. Zero means line 1.
	FirstLine int
	Err       error
	// Release returns Data to its loader. The ordered writer calls it once
	// the result has been formatted.
	Release func()
}

func (r *Result) firstLine() int {
	if r.FirstLine > 0 {
		return r.FirstLine
	}
	return 1
}

// Count returns the number of matches in this result.
func (r *Result) Count() int {
	return len(r.Matches)
}

// HasMatch reports whether the file matched at all.
func (r *Result) HasMatch() bool {
	return len(r.Matches) > 0
}
