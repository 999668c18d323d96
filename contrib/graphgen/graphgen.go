// Package graphgen produces COO triple streams for structured test
// matrices: regular grids and wheel graphs.
//
// Grid generation is parallelized one node per work item with
// contrib/workerpool's work-stealing helper, since a node near a grid edge
// has a different nonzero count than an interior node, the same
// uneven-cost-per-item shape workerpool.ForEachAtomic exists for.
package graphgen

import (
	"runtime"

	"github.com/mergepath/spmv"
	"github.com/mergepath/spmv/contrib/workerpool"
)

// Grid2D builds the 9-point-stencil adjacency of a dim x dim grid: node
// (i,j) is connected to every node (i+di, j+dj) with di, dj in [-1, 1],
// including itself, that stays inside the grid. RowDim == ColDim ==
// dim*dim.
func Grid2D(dim int) spmv.COO {
	return gridStencil(dim, [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	})
}

// Grid3D builds the 27-point-stencil adjacency of a dim x dim x dim grid,
// flattened so node (i,j,k) has id i*dim*dim + j*dim + k.
func Grid3D(dim int) spmv.COO {
	offsets := make([][3]int, 0, 27)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				offsets = append(offsets, [3]int{di, dj, dk})
			}
		}
	}
	return grid3DStencil(dim, offsets)
}

// Wheel builds a wheel graph with one hub node (id 0) connected to every
// spoke, and each spoke connected to the hub, itself, and its two ring
// neighbors.
// RowDim == ColDim == spokes+1.
func Wheel(spokes int) spmv.COO {
	if spokes < 3 {
		panic("graphgen: Wheel requires at least 3 spokes")
	}
	n := spokes + 1

	rowIdx := make([]int, 0, n*3)
	colIdx := make([]int, 0, n*3)
	values := make([]float64, 0, n*3)

	// Row 0 (hub): connected to every spoke, in ascending column order.
	for s := 1; s <= spokes; s++ {
		rowIdx = append(rowIdx, 0)
		colIdx = append(colIdx, s)
		values = append(values, 1)
	}

	for s := 1; s <= spokes; s++ {
		left := s - 1
		if left == 0 {
			left = spokes
		}
		right := s + 1
		if right > spokes {
			right = 1
		}

		cols := []int{0, left, s, right}
		cols = uniqueSorted(cols)
		for _, c := range cols {
			rowIdx = append(rowIdx, s)
			colIdx = append(colIdx, c)
			values = append(values, 1)
		}
	}

	return spmv.COO{RowIdx: rowIdx, ColIdx: colIdx, Values: values, RowDim: n, ColDim: n}
}

func uniqueSorted(cols []int) []int {
	for i := 1; i < len(cols); i++ {
		for j := i; j > 0 && cols[j-1] > cols[j]; j-- {
			cols[j-1], cols[j] = cols[j], cols[j-1]
		}
	}
	out := cols[:0]
	for i, c := range cols {
		if i == 0 || c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}

func gridStencil(dim int, offsets [][2]int) spmv.COO {
	n := dim * dim
	workers := runtime.GOMAXPROCS(0)

	counts := make([]int, n)
	workerpool.ForEachAtomic(workers, n, func(node int) {
		i, j := node/dim, node%dim
		counts[node] = neighborCount2D(i, j, dim, offsets)
	})

	rowStart := make([]int, n+1)
	for i := 0; i < n; i++ {
		rowStart[i+1] = rowStart[i] + counts[i]
	}

	total := rowStart[n]
	rowIdx := make([]int, total)
	colIdx := make([]int, total)
	values := make([]float64, total)

	workerpool.ForEachAtomic(workers, n, func(node int) {
		i, j := node/dim, node%dim
		k := rowStart[node]
		for _, off := range offsets {
			ni, nj := i+off[0], j+off[1]
			if ni < 0 || ni >= dim || nj < 0 || nj >= dim {
				continue
			}
			rowIdx[k] = node
			colIdx[k] = ni*dim + nj
			values[k] = 1
			k++
		}
	})

	return spmv.COO{RowIdx: rowIdx, ColIdx: colIdx, Values: values, RowDim: n, ColDim: n}
}

func neighborCount2D(i, j, dim int, offsets [][2]int) int {
	count := 0
	for _, off := range offsets {
		ni, nj := i+off[0], j+off[1]
		if ni >= 0 && ni < dim && nj >= 0 && nj < dim {
			count++
		}
	}
	return count
}

func grid3DStencil(dim int, offsets [][3]int) spmv.COO {
	n := dim * dim * dim
	workers := runtime.GOMAXPROCS(0)

	counts := make([]int, n)
	workerpool.ForEachAtomic(workers, n, func(node int) {
		i, j, k := node/(dim*dim), (node/dim)%dim, node%dim
		counts[node] = neighborCount3D(i, j, k, dim, offsets)
	})

	rowStart := make([]int, n+1)
	for i := 0; i < n; i++ {
		rowStart[i+1] = rowStart[i] + counts[i]
	}

	total := rowStart[n]
	rowIdx := make([]int, total)
	colIdx := make([]int, total)
	values := make([]float64, total)

	workerpool.ForEachAtomic(workers, n, func(node int) {
		i, j, k := node/(dim*dim), (node/dim)%dim, node%dim
		p := rowStart[node]
		for _, off := range offsets {
			ni, nj, nk := i+off[0], j+off[1], k+off[2]
			if ni < 0 || ni >= dim || nj < 0 || nj >= dim || nk < 0 || nk >= dim {
				continue
			}
			rowIdx[p] = node
			colIdx[p] = ni*dim*dim + nj*dim + nk
			values[p] = 1
			p++
		}
	})

	return spmv.COO{RowIdx: rowIdx, ColIdx: colIdx, Values: values, RowDim: n, ColDim: n}
}

func neighborCount3D(i, j, k, dim int, offsets [][3]int) int {
	count := 0
	for _, off := range offsets {
		ni, nj, nk := i+off[0], j+off[1], k+off[2]
		if ni >= 0 && ni < dim && nj >= 0 && nj < dim && nk >= 0 && nk < dim {
			count++
		}
	}
	return count
}
