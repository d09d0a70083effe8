package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/airports"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/arrivals"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/config"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/schiphol"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var arrivalsCmd = &cobra.Command{
	Use:   "arrivals",
	Short: "Show upcoming arrivals at Schiphol",
	Long:  "Fetches all arrivals scheduled within the next 24 hours and prints the ones still expected or delayed, sorted by scheduled time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArrivals(cmd)
	},
}

func runArrivals(cmd *cobra.Command) error {
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	windowHours, _ := cmd.Flags().GetInt("window")

	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		return fmt.Errorf("could not load Netherlands timezone: %w", err)
	}
	now := time.Now().In(loc)

	pipeline := newPipeline(maxPages, windowHours)

	var collected []arrivals.Arrival
	_ = spinner.New().
		Title("Fetching upcoming arrivals from Schiphol...").
		Action(func() {
			collected = pipeline.Collect(now)
		}).
		Run()

	if len(collected) == 0 {
		fmt.Println("No upcoming expected or delayed flights found.")
		return nil
	}

	// Fetching the pages takes time; finalize against a fresh clock
	arrivals.RenderTable(os.Stdout, arrivals.Finalize(collected, time.Now().In(loc)), time.Now().In(loc))
	return nil
}

// newPipeline wires the API client from the environment configuration.
func newPipeline(maxPages, windowHours int) *arrivals.Pipeline {
	api := config.LoadAPI()
	if api.BaseURL != "" {
		schiphol.SetBaseURL(api.BaseURL)
	}

	return &arrivals.Pipeline{
		Client:   schiphol.NewClient(api.AppID, api.AppKey),
		Airports: airports.Default(),
		MaxPages: maxPages,
		Window:   time.Duration(windowHours) * time.Hour,
	}
}

func init() {
	rootCmd.AddCommand(arrivalsCmd)
	rootCmd.PersistentFlags().IntP("max-pages", "p", 0, "Maximum number of pages to fetch (default 100)")
	rootCmd.PersistentFlags().IntP("window", "w", 24, "How many hours ahead to look for arrivals")
}
