package cmd

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mergepath/spmv"
	"github.com/mergepath/spmv/contrib/cpuref"
)

var (
	runSrc   matrixSourceFlags
	runCfg   spmv.Config
	runCheck bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the engine once against a matrix and report timing",
	RunE:  runRun,
}

func init() {
	bindMatrixSourceFlags(runCmd, &runSrc)
	bindConfigFlags(runCmd, &runCfg)
	runCmd.Flags().BoolVar(&runCheck, "check", false, "verify the result against the sequential reference")
}

func runRun(cmd *cobra.Command, args []string) error {
	m, err := loadMatrix(runSrc)
	if err != nil {
		return err
	}
	x := onesVector(m.ColDim)

	var y, want []float64
	var computeDur time.Duration

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		start := time.Now()
		var err error
		y, err = spmv.Compute(m, x, runCfg)
		computeDur = time.Since(start)
		return err
	})
	if runCheck {
		g.Go(func() error {
			want = cpuref.Multiply(m, x)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rows=%d cols=%d nnz=%d compute=%s\n",
		m.RowDim, m.ColDim, m.N(), computeDur)

	if runCheck {
		if maxDiff := maxAbsDiff(y, want); maxDiff > 1e-6 {
			return fmt.Errorf("result mismatch against reference: max abs diff %g", maxDiff)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "check: OK")
	}
	return nil
}

func maxAbsDiff(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
