package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mergepath/spmv"
	"github.com/mergepath/spmv/contrib/graphgen"
	"github.com/mergepath/spmv/contrib/mtx"
)

// matrixSourceFlags are the flags shared by any subcommand that needs a
// matrix, either loaded from a file or generated on the fly.
type matrixSourceFlags struct {
	file  string
	shape string
	dim   int
}

func bindMatrixSourceFlags(cmd *cobra.Command, f *matrixSourceFlags) {
	cmd.Flags().StringVar(&f.file, "file", "", "MatrixMarket file to load (mutually exclusive with --shape)")
	cmd.Flags().StringVar(&f.shape, "shape", "", "generated matrix shape: grid2d, grid3d, wheel")
	cmd.Flags().IntVar(&f.dim, "dim", 32, "shape parameter: grid side length, or wheel spoke count")
}

// loadMatrix resolves a matrixSourceFlags into a COO matrix, either by
// reading --file or generating --shape.
func loadMatrix(f matrixSourceFlags) (spmv.COO, error) {
	if f.file != "" && f.shape != "" {
		return spmv.COO{}, fmt.Errorf("specify only one of --file or --shape")
	}
	if f.file != "" {
		fh, err := os.Open(f.file)
		if err != nil {
			return spmv.COO{}, err
		}
		defer fh.Close()
		return mtx.Read(fh)
	}

	switch f.shape {
	case "grid2d", "":
		return graphgen.Grid2D(f.dim), nil
	case "grid3d":
		return graphgen.Grid3D(f.dim), nil
	case "wheel":
		return graphgen.Wheel(f.dim), nil
	default:
		return spmv.COO{}, fmt.Errorf("unknown shape %q (want grid2d, grid3d, or wheel)", f.shape)
	}
}

// onesVector returns a dense vector of n ones, the default x when the
// caller supplies no input vector of its own.
func onesVector(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	return x
}
