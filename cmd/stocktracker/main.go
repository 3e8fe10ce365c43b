// Command stocktracker runs the inventory and point-of-sale tracker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stocktracker",
	Short: "Inventory and point-of-sale tracker for small retailers",
	Long: `StockTracker keeps a product catalogue, records sales against stock,
maintains a stock movement audit trail and produces sales reports and
CSV exports.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
