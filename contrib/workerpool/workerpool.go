// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool launches the two shapes of parallel work the
// orchestrator needs and recovers a worker's panic into an error instead of
// crashing the process, the way a real accelerator reports a faulted
// cooperative group back to its host rather than taking the whole device
// down with it.
//
// RunWorkers covers the tile-reduction phase: exactly one call per
// independent worker, each owning a disjoint slice of the merge path.
// ForEachAtomic covers the graph generators: many small, unevenly sized
// items spread across a smaller number of goroutines by work stealing.
// Neither caller needs a persistent pool, since both launch once per call
// and tear down when it returns, so there is no Pool type to open or close.
package workerpool

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// RunWorkers calls fn(0), fn(1), ..., fn(n-1), each on its own goroutine
// (for n == 1, fn(0) runs on the calling goroutine), and waits for all of
// them. A panic inside fn is recovered and reported as
// that worker's error rather than propagating, so one faulted worker never
// takes down the others or the caller; RunWorkers returns the first
// non-nil error, matching errgroup.Group's semantics.
//
// This is deliberately narrower than a chunked-range API: every caller in
// this tree gives each worker exactly one index to own, never a subrange,
// so that is the only shape RunWorkers offers.
func RunWorkers(n int, fn func(worker int) error) error {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return runOne(0, fn)
	}

	var g errgroup.Group
	for w := range n {
		g.Go(func() error { return runOne(w, fn) })
	}
	return g.Wait()
}

func runOne(worker int, fn func(worker int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d: %v", worker, r)
		}
	}()
	return fn(worker)
}

// ForEachAtomic spreads fn over [0, n) across workers goroutines by atomic
// work stealing: each goroutine repeatedly claims the next unclaimed index
// until none remain. This balances load better than a fixed partition when
// per-item cost varies, which is exactly the graph generators' case: a
// node on a grid edge has fewer neighbors than an interior node.
//
// fn must not panic: ForEachAtomic has no caller that needs partial-failure
// reporting on this path, since a generator either produces a matrix or its
// caller's own validation rejects the request up front; RunWorkers is the
// path that carries panic recovery for callers that need it.
func ForEachAtomic(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 || workers > n {
		workers = n
	}
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for {
				idx := int(next.Add(1)) - 1
				if idx >= n {
					return nil
				}
				fn(idx)
			}
		})
	}
	g.Wait()
}
