// Package spmv computes a sparse-matrix x dense-vector product for a
// matrix stored in coordinate (COO) form, using a load-balanced segmented
// reduction over a merge-path decomposition of the COO stream. This file
// holds the public data model.
package spmv

// COO is a sparse matrix in coordinate form: three equal-length arrays
// describing the nonzero (row, col, value) triples. RowIdx must be
// non-decreasing; this is the one structural invariant Compute depends
// on to run the merge-path decomposition, and Validate checks it.
type COO struct {
	RowIdx []int
	ColIdx []int
	Values []float64

	RowDim int
	ColDim int
}

// N is the number of nonzero entries.
func (m COO) N() int { return len(m.Values) }

// Validate checks the invariants Compute requires before launch:
// RowIdx non-decreasing, every ColIdx in [0, ColDim), every RowIdx in
// [0, RowDim), and all three arrays the same length. It does not touch
// Values, which accepts any float64 including zero (an explicit zero
// nonzero is legal, just wasteful).
func (m COO) Validate() error {
	n := len(m.RowIdx)
	if len(m.ColIdx) != n || len(m.Values) != n {
		return invalidInputf("row_idx, col_idx, values must have equal length, got %d, %d, %d",
			len(m.RowIdx), len(m.ColIdx), len(m.Values))
	}
	if m.RowDim < 0 || m.ColDim < 0 {
		return invalidInputf("row_dim and col_dim must be non-negative, got %d, %d", m.RowDim, m.ColDim)
	}

	prev := -1
	for i, r := range m.RowIdx {
		if r < 0 || r >= m.RowDim {
			return invalidInputf("row_idx[%d] = %d out of range [0, %d)", i, r, m.RowDim)
		}
		if r < prev {
			return invalidInputf("row_idx is not non-decreasing at index %d: %d < %d", i, r, prev)
		}
		prev = r
	}
	for i, c := range m.ColIdx {
		if c < 0 || c >= m.ColDim {
			return invalidInputf("col_idx[%d] = %d out of range [0, %d)", i, c, m.ColDim)
		}
	}
	return nil
}

// segmentEnds computes the derived view the merge-path search needs:
// segEnd[r] is the number of nonzeros belonging to rows <= r, i.e. the
// upper-bound rank of row r in RowIdx. RowIdx's non-decreasing invariant
// makes this a single linear pass rather than a binary search per row.
func (m COO) segmentEnds() []int {
	segEnd := make([]int, m.RowDim)
	k := 0
	n := len(m.RowIdx)
	for r := 0; r < m.RowDim; r++ {
		for k < n && m.RowIdx[k] <= r {
			k++
		}
		segEnd[r] = k
	}
	return segEnd
}
