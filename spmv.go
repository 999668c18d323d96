package spmv

import (
	"fmt"
	"runtime"

	"github.com/mergepath/spmv/contrib/workerpool"
	"github.com/mergepath/spmv/internal/boundaryfix"
	"github.com/mergepath/spmv/internal/segreduce"
	"github.com/mergepath/spmv/internal/tilereduce"
)

// Compute runs y = A*x for the COO matrix m against dense vector x, using
// the configuration cfg (DefaultConfig() if the zero value is not what you
// want: a zero Config still works, since every knob falls back to its
// documented default, but MaxWorkers==0 then means "unbounded").
//
// Compute validates m up front: InvalidInput is always surfaced before
// launch, never mid-execution. It returns y with every entry equal to the
// identity (0) for rows with no nonzeros. A worker that fails after launch
// (ResourceExhausted, DeviceFailure) leaves y's contents undefined; callers
// must discard it rather than use a partial result.
func Compute(m COO, x []float64, cfg Config) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(x) < m.ColDim {
		return nil, invalidInputf("x has length %d, want at least col_dim=%d", len(x), m.ColDim)
	}

	y, err := allocFloats(m.RowDim, "result vector")
	if err != nil {
		return nil, err
	}
	if m.RowDim == 0 || m.N() == 0 {
		return y, nil
	}

	segEnd := m.segmentEnds()
	pathLen := m.RowDim + m.N()

	w := workerCount(cfg, pathLen)

	in := tilereduce.Input{
		RowIdx: m.RowIdx,
		ColIdx: m.ColIdx,
		Values: m.Values,
		X:      x,
		SegEnd: segEnd,
		RowDim: m.RowDim,
		N:      m.N(),
	}

	if w == 1 {
		_, last := tilereduce.Region(in, y, 0, pathLen, cfg.tileItems())
		// With a single worker there are no boundary partials to
		// reconcile, but the final unconditional scatter fixup would
		// have performed still must happen.
		y[last.RowID] = last.Value
		return y, nil
	}

	partials, err := allocPairs(2 * w)
	if err != nil {
		return nil, err
	}

	runErr := workerpool.RunWorkers(w, func(worker int) error {
		diagStart := worker * pathLen / w
		diagEnd := (worker + 1) * pathLen / w
		first, last := tilereduce.Region(in, y, diagStart, diagEnd, cfg.tileItems())
		partials[2*worker] = first
		partials[2*worker+1] = last
		return nil
	})
	if runErr != nil {
		return nil, &Error{Kind: DeviceFailure, Msg: runErr.Error()}
	}

	boundaryfix.Reconcile(partials, y, cfg.fixupTileItems())

	return y, nil
}

// allocFloats and allocPairs recover a panic from an absurd or overflowing
// make() length/capacity (e.g. a RowDim near the platform's int range) and
// report it as ResourceExhausted instead of crashing the process. This is
// the host-side analogue of a device allocation failure: real accelerator
// hardware rejects an over-budget allocation request rather than faulting
// the whole device, and Compute surfaces the same kind of failure here.
func allocFloats(n int, what string) (out []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Kind: ResourceExhausted, Msg: fmt.Sprintf("allocating %s (len %d): %v", what, n, r)}
		}
	}()
	return make([]float64, n), nil
}

func allocPairs(n int) (out []segreduce.Pair, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Kind: ResourceExhausted, Msg: fmt.Sprintf("allocating boundary partials (len %d): %v", n, r)}
		}
	}()
	return make([]segreduce.Pair, n), nil
}

// workerCount picks W: device parallelism (GOMAXPROCS, standing in for
// accelerator SM count) times the over-subscription factor, clamped to
// [1, pathLen] since a worker with no path steps to own does no useful
// work, and capped by cfg.MaxWorkers when the caller set one.
func workerCount(cfg Config, pathLen int) int {
	w := runtime.GOMAXPROCS(0) * cfg.overSubscription()
	if cfg.MaxWorkers > 0 && w > cfg.MaxWorkers {
		w = cfg.MaxWorkers
	}
	if w > pathLen {
		w = pathLen
	}
	if w < 1 {
		w = 1
	}
	return w
}
