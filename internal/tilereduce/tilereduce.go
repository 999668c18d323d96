// Package tilereduce implements the per-worker tile walk: each worker owns
// a contiguous range of the merge path, walks it a tile of path steps at a
// time, runs the segmented scan over each tile, writes any row whose
// completion falls strictly inside the region, and reports the two
// boundary partials (first, last) for the fixup pass to reconcile.
//
// A hardware cooperative group would split each tile further across
// several lanes and publish per-lane path endpoints so one lane can read
// its start from the previous lane's end. A goroutine worker has no such
// lanes, since the work is already parallel at the worker level, so this
// walks each tile's path steps directly; the tile size here controls only
// the scan/write batching granularity, not a second level of concurrency.
package tilereduce

import (
	"github.com/mergepath/spmv/internal/mergepath"
	"github.com/mergepath/spmv/internal/segreduce"
)

// Input is the read-only COO data a worker needs to reduce its region.
// RowIdx/ColIdx/Values describe the N nonzeros; X is the dense vector
// (length >= col_dim); SegEnd has length row_dim and SegEnd[r] is the
// count of nonzeros belonging to rows <= r (the upper-bound rank of row r).
type Input struct {
	RowIdx []int
	ColIdx []int
	Values []float64
	X      []float64
	SegEnd []int
	RowDim int
	N      int
}

// Region reduces the merge-path range [diagStart, diagEnd) and scatters any
// row whose tail flag falls strictly inside the region into result. It
// returns the first and last boundary partials for boundaryfix.
//
// result must be at least RowDim long and is written disjointly: Region
// never writes a row outside [diagStart, diagEnd)'s coverage, so concurrent
// calls for disjoint diagonal ranges never race.
//
// first holds the region's local total for its first row when that row's
// tail falls inside the region and later rows follow; otherwise first
// carries the identity and the first row's local total is in last.
func Region(in Input, result []float64, diagStart, diagEnd, tileItems int) (first, last segreduce.Pair) {
	rowStart, valStart := mergepath.Search(diagStart, in.SegEnd, in.RowDim, in.N)
	rowEnd, valEnd := mergepath.Search(diagEnd, in.SegEnd, in.RowDim, in.N)

	firstRow := rowStart
	first = segreduce.Pair{RowID: firstRow, Value: 0}
	firstLatched := false

	running := segreduce.Pair{RowID: rowStart, Value: 0}

	curRow, curVal := rowStart, valStart
	pairs := make([]segreduce.Pair, 0, tileItems)
	tails := make([]bool, 0, tileItems)

	for curRow < rowEnd || curVal < valEnd {
		pairs = pairs[:0]
		tails = tails[:0]

		remaining := tileItems
		for remaining > 0 && (curRow < rowEnd || curVal < valEnd) {
			if curRow < rowEnd && (curVal >= valEnd || in.SegEnd[curRow] <= curVal) {
				pairs = append(pairs, segreduce.Pair{RowID: curRow, Value: 0})
				tails = append(tails, true)
				curRow++
			} else {
				pairs = append(pairs, segreduce.Pair{RowID: curRow, Value: in.Values[curVal] * in.X[in.ColIdx[curVal]]})
				tails = append(tails, false)
				curVal++
			}
			remaining--
		}

		running = segreduce.ScanTile(pairs, running)

		for i, tail := range tails {
			if !tail {
				continue
			}
			result[pairs[i].RowID] = pairs[i].Value
			if pairs[i].RowID == firstRow && !firstLatched {
				first.Value = pairs[i].Value
				firstLatched = true
			}
		}
	}

	last = running
	// A region that ends on its first row's tail carries that row's local
	// total in both first and last; report it once, through last, so the
	// fixup pass does not add it twice.
	if firstLatched && last.RowID == firstRow {
		first.Value = 0
	}
	return first, last
}
