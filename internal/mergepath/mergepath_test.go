package mergepath

import "testing"

// segEnd for rows [0,0,1,2] over N=4 values: row 0 ends at 2, row 1 ends at
// 3, row 2 ends at 4 (row_dim=3, N=4). This is scenario #2 from the engine's
// end-to-end test table.
func testSegEnd() []int { return []int{2, 3, 4} }

func TestSearchEndpoints(t *testing.T) {
	segEnd := testSegEnd()
	rowDim, n := 3, 4

	aOff, bOff := Search(0, segEnd, rowDim, n)
	if aOff != 0 || bOff != 0 {
		t.Errorf("Search(0) = (%d,%d), want (0,0)", aOff, bOff)
	}

	aOff, bOff = Search(rowDim+n, segEnd, rowDim, n)
	if aOff != rowDim || bOff != n {
		t.Errorf("Search(end) = (%d,%d), want (%d,%d)", aOff, bOff, rowDim, n)
	}
}

func TestSearchMonotonic(t *testing.T) {
	segEnd := testSegEnd()
	rowDim, n := 3, 4

	prevA, prevB := -1, -1
	for d := 0; d <= rowDim+n; d++ {
		a, b := Search(d, segEnd, rowDim, n)
		if a+b != d {
			t.Fatalf("Search(%d) = (%d,%d), a+b != d", d, a, b)
		}
		if a < prevA || b < prevB {
			t.Fatalf("Search(%d) = (%d,%d) not monotonic vs previous (%d,%d)", d, a, b, prevA, prevB)
		}
		prevA, prevB = a, b
	}
}

// TestSearchTieGoesToSegment verifies the tie-break rule that makes empty
// rows emit their completion marker before consuming a value: when
// segEnd[r] == valIdx, the split must land with aOff past r.
func TestSearchTieGoesToSegment(t *testing.T) {
	// Row 0 is empty: segEnd = [0, 2], N=2, row_dim=2.
	// Path: tail(0) at d=0 (empty row ties with val 0), then values 0,1, then tail(1).
	segEnd := []int{0, 2}
	rowDim, n := 2, 2

	aOff, bOff := Search(1, segEnd, rowDim, n)
	// At diagonal 1, row 0's tail (which ties with value 0) must already be
	// consumed on the A side, so aOff should be 1 and bOff 0.
	if aOff != 1 || bOff != 0 {
		t.Errorf("Search(1) = (%d,%d), want (1,0) — ties must favor the segment side", aOff, bOff)
	}
}

func TestSearchPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range diagonal")
		}
	}()
	Search(100, testSegEnd(), 3, 4)
}
