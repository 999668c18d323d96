// Package boundaryfix implements the single-worker reconciliation pass
// that runs after all tile reducers complete. It streams the 2*W boundary
// partials, already in non-decreasing rowId order because workers own
// contiguous merge-path ranges, and, for every run of partials sharing a
// rowId that closes out before the very last partial, writes the run's
// total to the result. The very last partial is always scattered
// unconditionally.
package boundaryfix

import "github.com/mergepath/spmv/internal/segreduce"

// Reconcile walks partials (length 2*W, first[0], last[0], first[1], ...)
// and corrects result for every row that straddles a worker boundary.
// tileItems controls the streaming batch size; it affects only how much
// scratch is allocated per step, never the result.
func Reconcile(partials []segreduce.Pair, result []float64, tileItems int) {
	n := len(partials)
	if n == 0 {
		return
	}
	if tileItems <= 0 {
		tileItems = n
	}

	carry := segreduce.Pair{RowID: partials[0].RowID, Value: 0}
	prevRowID := partials[0].RowID

	tileCopy := make([]segreduce.Pair, 0, tileItems)
	rawRowID := make([]int, 0, tileItems)

	for start := 0; start < n; start += tileItems {
		end := min(start+tileItems, n)
		tile := partials[start:end]

		tileCopy = append(tileCopy[:0], tile...)
		rawRowID = rawRowID[:0]
		for _, p := range tile {
			rawRowID = append(rawRowID, p.RowID)
		}

		newCarry := segreduce.ScanTileExclusive(tileCopy, carry)

		for i, rowID := range rawRowID {
			global := start + i
			if global > 0 && rowID != prevRowID {
				// tileCopy[i] holds the exclusive prefix up to (not
				// including) this partial: the total of the run that
				// just closed at prevRowID.
				result[prevRowID] = tileCopy[i].Value
			}
			prevRowID = rowID
		}

		carry = newCarry
	}

	// The very last partial's run is never closed by a later head, so it
	// is always scattered unconditionally.
	result[carry.RowID] = carry.Value
}
