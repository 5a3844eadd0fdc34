// Package scheduler fans discovered files out to a pool of scan workers.
package scheduler

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/voluta/voluta/internal/output"
	"github.com/voluta/voluta/internal/walker"
)

// ScanFunc searches one file and reports the outcome.
type ScanFunc func(path string) output.Result

// Scheduler manages a pool of workers that scan files concurrently.
type Scheduler struct {
	workers int
	scan    ScanFunc
}

// New creates a Scheduler running scan on the given number of workers.
// workers <= 0 selects twice the CPU count so the pool stays busy while
// some workers wait on I/O.
func New(workers int, scan ScanFunc) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	return &Scheduler{workers: workers, scan: scan}
}

// Run consumes entries until the channel closes and delivers one result per
// entry. Results carry sequence numbers in dequeue order so the writer can
// restore it downstream.
func (s *Scheduler) Run(entries <-chan walker.Entry) <-chan output.Result {
	resultCh := make(chan output.Result, s.workers*2)
	var seq atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range entries {
				seqNum := int(seq.Add(1))
				result := s.scan(entry.Path)
				result.Seq = seqNum
				resultCh <- result
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}
