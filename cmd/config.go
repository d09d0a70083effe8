package cmd

import (
	"fmt"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/config"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage amsterdam-flight-vibe configuration",
	Long:  "View or edit your local configuration settings (accent color, default export path, saved country filter).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setExport, _ := cmd.Flags().GetString("set-export-path")
		if setExport != "" {
			cfg.DefaultExportPath = setExport
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Default export path saved as: %s\n", setExport)
			return nil
		}

		setCountry, _ := cmd.Flags().GetString("set-country")
		if setCountry != "" {
			cfg.SavedCountry = setCountry
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Saved country filter: %s\n", setCountry)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-export-path", "e", "", "Set the default ICS export path")
	configCmd.Flags().StringP("set-country", "c", "", "Save a 2-letter country code to filter arrivals by")
}
