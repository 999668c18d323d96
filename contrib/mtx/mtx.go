// Package mtx reads and writes the MatrixMarket coordinate format, a
// common on-disk matrix source. It supports the "general" and
// "symmetric" coordinate forms with real, integer, or pattern value
// fields.
//
// A symmetric file stores only the lower (or upper) triangle; Read
// expands it by materializing both (r, c) and (c, r) for every
// off-diagonal entry, then sorts by row (see DESIGN.md for why this one
// path stays on the standard library's sort package).
package mtx

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mergepath/spmv"
)

// Read parses a MatrixMarket coordinate-format stream into a COO matrix
// whose RowIdx is sorted non-decreasing, satisfying spmv.Compute's
// invariant. Row and column indices are converted from MatrixMarket's
// 1-based convention to 0-based.
func Read(r io.Reader) (spmv.COO, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var symmetric, pattern bool
	headerSeen := false

	var rowDim, colDim, nnz int
	rowIdx := make([]int, 0)
	colIdx := make([]int, 0)
	values := make([]float64, 0)

	dimsParsed := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%%MatrixMarket") {
			fields := strings.Fields(line)
			for _, f := range fields {
				switch strings.ToLower(f) {
				case "symmetric":
					symmetric = true
				case "pattern":
					pattern = true
				}
			}
			headerSeen = true
			continue
		}
		if strings.HasPrefix(line, "%") {
			continue
		}
		if !dimsParsed {
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return spmv.COO{}, fmt.Errorf("mtx: malformed dimension line %q", line)
			}
			var err error
			if rowDim, err = strconv.Atoi(fields[0]); err != nil {
				return spmv.COO{}, fmt.Errorf("mtx: bad row dimension: %w", err)
			}
			if colDim, err = strconv.Atoi(fields[1]); err != nil {
				return spmv.COO{}, fmt.Errorf("mtx: bad col dimension: %w", err)
			}
			if nnz, err = strconv.Atoi(fields[2]); err != nil {
				return spmv.COO{}, fmt.Errorf("mtx: bad nnz count: %w", err)
			}
			dimsParsed = true
			cap := nnz
			if symmetric {
				cap *= 2
			}
			rowIdx = make([]int, 0, cap)
			colIdx = make([]int, 0, cap)
			values = make([]float64, 0, cap)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return spmv.COO{}, fmt.Errorf("mtx: malformed entry line %q", line)
		}
		r, err := strconv.Atoi(fields[0])
		if err != nil {
			return spmv.COO{}, fmt.Errorf("mtx: bad row index: %w", err)
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return spmv.COO{}, fmt.Errorf("mtx: bad col index: %w", err)
		}
		v := 1.0
		if !pattern {
			if len(fields) < 3 {
				return spmv.COO{}, fmt.Errorf("mtx: entry %q missing value field", line)
			}
			if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return spmv.COO{}, fmt.Errorf("mtx: bad value: %w", err)
			}
		}

		r0, c0 := r-1, c-1
		rowIdx = append(rowIdx, r0)
		colIdx = append(colIdx, c0)
		values = append(values, v)
		if symmetric && r0 != c0 {
			rowIdx = append(rowIdx, c0)
			colIdx = append(colIdx, r0)
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return spmv.COO{}, err
	}
	if !headerSeen || !dimsParsed {
		return spmv.COO{}, fmt.Errorf("mtx: missing MatrixMarket header or dimension line")
	}

	m := spmv.COO{RowIdx: rowIdx, ColIdx: colIdx, Values: values, RowDim: rowDim, ColDim: colDim}
	sortByRow(&m)
	return m, nil
}

// Write emits m in MatrixMarket general coordinate real format, 1-indexed.
func Write(w io.Writer, m spmv.COO) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "%%MatrixMarket matrix coordinate real general"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", m.RowDim, m.ColDim, m.N()); err != nil {
		return err
	}
	for i := range m.Values {
		if _, err := fmt.Fprintf(bw, "%d %d %g\n", m.RowIdx[i]+1, m.ColIdx[i]+1, m.Values[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// sortByRow restores the non-decreasing RowIdx invariant after symmetric
// expansion may have interleaved rows out of order.
func sortByRow(m *spmv.COO) {
	idx := make([]int, len(m.RowIdx))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return m.RowIdx[idx[a]] < m.RowIdx[idx[b]] })

	rowIdx := make([]int, len(idx))
	colIdx := make([]int, len(idx))
	values := make([]float64, len(idx))
	for newPos, oldPos := range idx {
		rowIdx[newPos] = m.RowIdx[oldPos]
		colIdx[newPos] = m.ColIdx[oldPos]
		values[newPos] = m.Values[oldPos]
	}
	m.RowIdx, m.ColIdx, m.Values = rowIdx, colIdx, values
}
