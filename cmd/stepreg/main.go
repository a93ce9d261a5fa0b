// Command stepreg runs stepwise feature selection on a CSV table.
//
// Usage:
//
//	stepreg select --data sales.csv.zst --target sales --min-vars 2 --max-vars 6
//	stepreg select --config run.yaml --verbose
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stepreg",
		Short:         "Adaptive stepwise variable selection for linear regression",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSelectCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stepreg:", err)
		os.Exit(1)
	}
}
