package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/arrivals"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/config"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/exporter"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export upcoming arrivals to an ICS file",
	Long:  `Export the upcoming arrivals board to an ICS calendar file, one event per flight at its scheduled arrival time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		maxPages, _ := cmd.Flags().GetInt("max-pages")
		windowHours, _ := cmd.Flags().GetInt("window")

		if output == "" {
			output = "arrivals.ics"
			if cfg, err := config.Load(); err == nil && cfg.DefaultExportPath != "" {
				output = cfg.DefaultExportPath
			}
		}

		loc, err := time.LoadLocation("Europe/Amsterdam")
		if err != nil {
			return fmt.Errorf("could not load Netherlands timezone: %w", err)
		}
		now := time.Now().In(loc)

		pipeline := newPipeline(maxPages, windowHours)

		var collected []arrivals.Arrival
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting upcoming arrivals to %s...", output)).
			Action(func() {
				collected = pipeline.Collect(now)
			}).
			Run()

		if len(collected) == 0 {
			return fmt.Errorf("no upcoming arrivals to export")
		}

		upcoming := arrivals.Finalize(collected, time.Now().In(loc))

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(upcoming, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d arrivals to %s\n", len(upcoming), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "Output file path (default arrivals.ics)")
}
