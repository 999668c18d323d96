// Package cmd implements the spmv-bench command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mergepath/spmv"
)

var rootCmd = &cobra.Command{
	Use:   "spmv-bench",
	Short: "Run and benchmark the merge-path SpMV engine",
	Long: `spmv-bench exercises the merge-path SpMV engine against
generated or MatrixMarket-loaded matrices: run a single product, check
it against the sequential reference, or sweep worker counts for
throughput.`,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd, generateCmd, benchCmd)
}

// bindConfigFlags attaches the tunable, performance-only Config knobs
// to cmd as local flags, seeded from spmv.DefaultConfig().
func bindConfigFlags(cmd *cobra.Command, cfg *spmv.Config) {
	def := spmv.DefaultConfig()
	cmd.Flags().IntVar(&cfg.WorkersPerGroup, "workers-per-group", def.WorkersPerGroup, "tile-reduction scan width")
	cmd.Flags().IntVar(&cfg.ItemsPerLane, "items-per-lane", def.ItemsPerLane, "path steps per lane per tile")
	cmd.Flags().IntVar(&cfg.OverSubscriptionFactor, "oversubscription", def.OverSubscriptionFactor, "worker count multiplier over detected parallelism")
	cmd.Flags().IntVar(&cfg.FixupWorkersPerGroup, "fixup-workers-per-group", def.FixupWorkersPerGroup, "boundary-fixup scan width")
	cmd.Flags().IntVar(&cfg.FixupItemsPerLane, "fixup-items-per-lane", def.FixupItemsPerLane, "boundary-fixup path steps per lane")
	cmd.Flags().IntVar(&cfg.MaxWorkers, "max-workers", 0, "cap on independent workers (0 = unbounded)")
}
