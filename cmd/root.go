package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amsterdam-flight-vibe",
	Short: "A live arrivals board for Amsterdam Schiphol in your terminal",
	Long: `amsterdam-flight-vibe pulls upcoming arrivals from the Schiphol public
flights API and renders them as a sorted table: flight, time, origin city
with its flag, status and gate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation shows the arrivals board
		return runArrivals(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
