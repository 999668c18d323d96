// Package cpuref is a sequential CPU reference implementation: a
// straightforward, row-order accumulation used by tests and by
// cmd/spmv-bench's --check flag to validate the parallel engine's output.
package cpuref

import "github.com/mergepath/spmv"

// Multiply computes y = A*x by walking the COO stream once in row order,
// accumulating each row left to right, the same summation order the
// parallel engine's segmented scan uses within one worker. With more than
// one worker the engine adds per-worker partials of a row together, a
// different grouping, so the two agree only up to floating-point rounding.
func Multiply(m spmv.COO, x []float64) []float64 {
	y := make([]float64, m.RowDim)
	for i, r := range m.RowIdx {
		y[r] += m.Values[i] * x[m.ColIdx[i]]
	}
	return y
}
