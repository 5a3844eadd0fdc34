package matcher

// Window is a half-open byte range of the corpus scanned as one unit.
type Window struct {
	Start int
	End   int
}

// Len returns the window size in bytes.
func (w Window) Len() int { return w.End - w.Start }

// Planner emits the ordered sequence of windows covering a corpus. Each
// window spans chunk+overlap bytes (clamped at the corpus end) and starts
// chunk bytes after the previous one, so consecutive windows share exactly
// overlap bytes. With overlap = maxPatternLength-1 any occurrence beginning
// in a window's stride ends inside that window, which is what makes the
// per-window scans lossless.
type Planner struct {
	length  int
	chunk   int
	overlap int
	pos     int
}

// Plan returns a planner over a corpus of the given length. chunk must be
// at least 1; overlap at least 0.
func Plan(length, chunk, overlap int) *Planner {
	return &Planner{length: length, chunk: chunk, overlap: overlap}
}

// Next returns the next window. ok is false once the corpus is covered; an
// empty corpus yields no windows at all.
func (p *Planner) Next() (w Window, ok bool) {
	if p.pos >= p.length {
		return Window{}, false
	}
	end := p.pos + p.chunk + p.overlap
	if end > p.length {
		end = p.length
	}
	w = Window{Start: p.pos, End: end}
	p.pos += p.chunk
	return w, true
}

// Windows materializes the whole plan. Used by the parallel strategy, which
// partitions work up front.
func Windows(length, chunk, overlap int) []Window {
	if length <= 0 {
		return nil
	}
	ws := make([]Window, 0, (length+chunk-1)/chunk)
	p := Plan(length, chunk, overlap)
	for w, ok := p.Next(); ok; w, ok = p.Next() {
		ws = append(ws, w)
	}
	return ws
}
