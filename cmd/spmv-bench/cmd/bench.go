package cmd

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mergepath/spmv"
)

var (
	benchSrc        matrixSourceFlags
	benchCfg        spmv.Config
	benchWorkerList string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Sweep worker counts and report throughput",
	RunE:  runBench,
}

func init() {
	bindMatrixSourceFlags(benchCmd, &benchSrc)
	bindConfigFlags(benchCmd, &benchCfg)
	benchCmd.Flags().StringVar(&benchWorkerList, "workers", "", "comma-separated list of --max-workers values to sweep (default: GOMAXPROCS and 2x, 4x)")
	benchCmd.Flags().IntVar(&benchCfg.Iterations, "iterations", spmv.DefaultConfig().Iterations, "samples per worker count")
}

func runBench(cmd *cobra.Command, args []string) error {
	m, err := loadMatrix(benchSrc)
	if err != nil {
		return err
	}
	x := onesVector(m.ColDim)

	workerCounts, err := resolveWorkerCounts(benchWorkerList)
	if err != nil {
		return err
	}
	if benchCfg.Iterations <= 0 {
		benchCfg.Iterations = 1
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rows=%d cols=%d nnz=%d iterations=%d\n", m.RowDim, m.ColDim, m.N(), benchCfg.Iterations)
	fmt.Fprintln(cmd.OutOrStdout(), "workers\tmin\tmedian\tmax")

	for _, w := range workerCounts {
		cfg := benchCfg
		cfg.MaxWorkers = w

		samples := make([]time.Duration, benchCfg.Iterations)
		for i := range samples {
			start := time.Now()
			if _, err := spmv.Compute(m, x, cfg); err != nil {
				return err
			}
			samples[i] = time.Since(start)
		}

		min, median, max := summarize(samples)
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", w, min, median, max)
	}
	return nil
}

// summarize reduces a batch of timing samples to min/median/max, using
// samber/lo's slice helpers for the min/max reduction rather than a
// hand-rolled loop.
func summarize(samples []time.Duration) (min, median, max time.Duration) {
	nanos := lo.Map(samples, func(d time.Duration, _ int) int64 { return int64(d) })

	min = time.Duration(lo.Min(nanos))
	max = time.Duration(lo.Max(nanos))

	sorted := append([]int64(nil), nanos...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	median = time.Duration(sorted[len(sorted)/2])
	return min, median, max
}

func resolveWorkerCounts(list string) ([]int, error) {
	if list == "" {
		base := runtime.GOMAXPROCS(0)
		return []int{base, base * 2, base * 4}, nil
	}
	fields := lo.Filter(strings.Split(list, ","), func(s string, _ int) bool { return strings.TrimSpace(s) != "" })
	counts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad --workers entry %q: %w", f, err)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
