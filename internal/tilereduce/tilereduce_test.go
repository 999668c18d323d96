package tilereduce

import "testing"

func segEndsOf(rowIdx []int, rowDim int) []int {
	segEnd := make([]int, rowDim)
	k := 0
	for r := 0; r < rowDim; r++ {
		for k < len(rowIdx) && rowIdx[k] <= r {
			k++
		}
		segEnd[r] = k
	}
	return segEnd
}

func TestRegionSingleWorkerWholeMatrix(t *testing.T) {
	rowIdx := []int{0, 0, 1, 2}
	colIdx := []int{0, 1, 2, 0}
	values := []float64{2, 3, 4, 5}
	rowDim, n := 3, 4

	in := Input{
		RowIdx: rowIdx, ColIdx: colIdx, Values: values,
		X:      []float64{1, 1, 1},
		SegEnd: segEndsOf(rowIdx, rowDim),
		RowDim: rowDim, N: n,
	}

	result := make([]float64, rowDim)
	first, last := Region(in, result, 0, rowDim+n, 4)

	want := []float64{5, 4, 5}
	for r := range want {
		if result[r] != want[r] {
			t.Errorf("result[%d] = %v, want %v", r, result[r], want[r])
		}
	}
	if first.RowID != 0 {
		t.Errorf("first.RowID = %d, want 0", first.RowID)
	}
	if last.RowID != 2 || last.Value != 5 {
		t.Errorf("last = %+v, want {2 5}", last)
	}
}

func TestRegionEmptyRegion(t *testing.T) {
	rowIdx := []int{0, 0, 1, 2}
	colIdx := []int{0, 1, 2, 0}
	values := []float64{2, 3, 4, 5}
	rowDim, n := 3, 4

	in := Input{
		RowIdx: rowIdx, ColIdx: colIdx, Values: values,
		X:      []float64{1, 1, 1},
		SegEnd: segEndsOf(rowIdx, rowDim),
		RowDim: rowDim, N: n,
	}

	result := make([]float64, rowDim)
	first, last := Region(in, result, 2, 2, 4)

	if first != last {
		t.Errorf("empty region: first=%+v last=%+v, want equal", first, last)
	}
	if first.Value != 0 {
		t.Errorf("empty region: first.Value = %v, want 0", first.Value)
	}
	for r, v := range result {
		if v != 0 {
			t.Errorf("empty region must not write: result[%d] = %v", r, v)
		}
	}
}

// TestRegionStraddlingRowIsPartial confirms that a worker whose region
// starts mid-row (no tail flag for its first row inside the region)
// contributes only a partial via `last`, with no write to that row — the
// row is not finalized until boundaryfix reconciles it.
func TestRegionStraddlingRowIsPartial(t *testing.T) {
	// Single row with 10 values, split into a region covering only the
	// first half of the path.
	rowIdx := make([]int, 10)
	colIdx := make([]int, 10)
	values := make([]float64, 10)
	for i := range values {
		colIdx[i] = 0
		values[i] = 1
	}
	rowDim, n := 1, 10

	in := Input{
		RowIdx: rowIdx, ColIdx: colIdx, Values: values,
		X:      []float64{1},
		SegEnd: segEndsOf(rowIdx, rowDim),
		RowDim: rowDim, N: n,
	}

	result := make([]float64, rowDim)
	// Path length is rowDim+n = 11; split at diagonal 5, covering only
	// value steps 0..4 (no tail flag possible in this half).
	first, last := Region(in, result, 0, 5, 4)

	if result[0] != 0 {
		t.Errorf("partial region must not write the straddling row: result[0] = %v", result[0])
	}
	if first.RowID != 0 || last.RowID != 0 || last.Value != 5 {
		t.Errorf("first=%+v last=%+v, want first.RowID=0 last={0 5}", first, last)
	}
}
