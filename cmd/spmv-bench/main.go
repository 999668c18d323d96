// Command spmv-bench drives the engine from the command line: loading
// or generating a matrix, running it, optionally checking the result
// against the sequential reference, and reporting timing.
package main

import (
	"fmt"
	"os"

	"github.com/mergepath/spmv/cmd/spmv-bench/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spmv-bench:", err)
		os.Exit(1)
	}
}
