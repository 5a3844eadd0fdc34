package scan

import (
	"runtime"
	"sync"

	"github.com/voluta/voluta/internal/matcher"
)

// Parallel scans the windows of data concurrently and merges the per-window
// candidates in window order, so its output is identical to Chunked with
// the same chunk no matter how many workers run or how they interleave.
// workers <= 0 selects runtime.NumCPU().
func Parallel(idx *matcher.Index, data []byte, chunk, workers int) []matcher.Span {
	ws := matcher.Windows(len(data), chunk, idx.Overlap())
	if len(ws) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(ws) {
		workers = len(ws)
	}
	if workers == 1 {
		return Chunked(idx, data, chunk)
	}

	locals := make([][]matcher.Span, len(ws))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				w := ws[j]
				spans := idx.FindAll(data[w.Start:w.End])
				for k := range spans {
					spans[k].Start += w.Start
					spans[k].End += w.Start
				}
				locals[j] = spans
			}
		}()
	}
	for j := range ws {
		jobs <- j
	}
	close(jobs)
	wg.Wait()

	c := newCollector(idx)
	for _, spans := range locals {
		for _, sp := range spans {
			c.add(data, 0, sp)
		}
	}
	return c.spans()
}
