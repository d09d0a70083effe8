package cmd

import (
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to browse arrivals, filter them by destination country, and tweak your settings interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunArrivalsTUI()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
