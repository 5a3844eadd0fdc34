package scan

import "github.com/voluta/voluta/internal/matcher"

// collector folds a stream of corpus-global candidate spans into the final
// match list. Every strategy produces the same candidate stream ordered by
// end offset, so running it through one shared pipeline is what makes the
// strategies agree byte for byte.
type collector struct {
	idx    *matcher.Index
	set    *matcher.Set
	resume int
}

func newCollector(idx *matcher.Index) *collector {
	return &collector{idx: idx, set: matcher.NewSet()}
}

// add judges one candidate. ctx is a buffer the span's coordinates fall in
// after subtracting base (its corpus offset); it must hold the bytes
// adjacent to the span wherever the corpus has them, since the word
// boundary check reads them. In non-overlapping mode the cursor advances
// even when the boundary check later rejects the span: the leftmost
// non-overlapping walk consumes the occurrence either way.
func (c *collector) add(ctx []byte, base int, sp matcher.Span) {
	if !c.idx.Overlapping() {
		if sp.Start < c.resume {
			return
		}
		c.resume = sp.End
	}
	if !c.idx.OnBoundary(ctx, sp.Start-base, sp.End-base) {
		return
	}
	c.set.Add(sp)
}

func (c *collector) spans() []matcher.Span { return c.set.Spans() }
