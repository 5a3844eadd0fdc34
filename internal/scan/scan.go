// Package scan runs a compiled pattern index over corpora held in memory,
// arriving in chunks, or read line by line. All strategies report the same
// matches for the same corpus and flags; they differ only in how the bytes
// reach the automaton.
package scan

import "github.com/voluta/voluta/internal/matcher"

// Bytes scans data as a single window.
func Bytes(idx *matcher.Index, data []byte) []matcher.Span {
	c := newCollector(idx)
	for _, sp := range idx.FindAll(data) {
		c.add(data, 0, sp)
	}
	return c.spans()
}

// Chunked scans data in fixed strides, each widened by the index overlap so
// occurrences straddling a stride boundary are still seen whole. The result
// does not depend on chunk.
func Chunked(idx *matcher.Index, data []byte, chunk int) []matcher.Span {
	c := newCollector(idx)
	p := matcher.Plan(len(data), chunk, idx.Overlap())
	for w, ok := p.Next(); ok; w, ok = p.Next() {
		for _, sp := range idx.FindAll(data[w.Start:w.End]) {
			c.add(data, 0, matcher.Span{
				Start:   w.Start + sp.Start,
				End:     w.Start + sp.End,
				Pattern: sp.Pattern,
			})
		}
	}
	return c.spans()
}
