package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mergepath/spmv/contrib/mtx"
)

var (
	generateSrc matrixSourceFlags
	generateOut string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a matrix and write it to a MatrixMarket file",
	RunE:  runGenerate,
}

func init() {
	bindMatrixSourceFlags(generateCmd, &generateSrc)
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output MatrixMarket file (required)")
	generateCmd.MarkFlagRequired("out")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateSrc.file != "" {
		return fmt.Errorf("generate produces a matrix, it does not load one: drop --file")
	}
	m, err := loadMatrix(generateSrc)
	if err != nil {
		return err
	}

	fh, err := os.Create(generateOut)
	if err != nil {
		return err
	}
	defer fh.Close()

	if err := mtx.Write(fh, m); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows, %d nonzeros to %s\n", m.RowDim, m.N(), generateOut)
	return nil
}
