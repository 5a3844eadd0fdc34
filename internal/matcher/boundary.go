package matcher

// isWordByte reports whether b belongs to a word: ASCII alphanumeric or
// underscore. Everything else, including every non-ASCII byte, is a
// boundary byte.
func isWordByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z':
		return true
	case 'A' <= b && b <= 'Z':
		return true
	case '0' <= b && b <= '9':
		return true
	case b == '_':
		return true
	}
	return false
}

// OnBoundary reports whether the span [start, end) sits on word boundaries
// within ctx. Positions outside ctx count as boundaries, so ctx must hold
// the byte just before start and the byte at end whenever those exist in
// the corpus: windowed strategies pass the whole corpus (or a combined
// window that is guaranteed to include the adjacent bytes), never a bare
// window slice.
func (x *Index) OnBoundary(ctx []byte, start, end int) bool {
	if !x.wholeWord {
		return true
	}
	if start > 0 && isWordByte(ctx[start-1]) {
		return false
	}
	if end < len(ctx) && isWordByte(ctx[end]) {
		return false
	}
	return true
}
