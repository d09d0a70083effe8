package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/airports"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/arrivals"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/config"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/schiphol"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RunArrivalsTUI launches the interactive experience for browsing arrivals
func RunArrivalsTUI() error {
	var view string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What do you want to see?").
				Options(
					huh.NewOption("All upcoming arrivals", "all"),
					huh.NewOption("Arrivals from a specific city", "city"),
					huh.NewOption("Arrivals from a specific country", "country"),
					huh.NewOption("Settings", "config"),
				).
				Value(&view),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if view == "config" {
		return RunConfigTUI()
	}

	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		return fmt.Errorf("could not load Netherlands timezone: %w", err)
	}
	now := time.Now().In(loc)

	table := airports.Default()

	api := config.LoadAPI()
	if api.BaseURL != "" {
		schiphol.SetBaseURL(api.BaseURL)
	}
	pipeline := &arrivals.Pipeline{
		Client:   schiphol.NewClient(api.AppID, api.AppKey),
		Airports: table,
	}

	var collected []arrivals.Arrival
	_ = spinner.New().
		Title("Fetching upcoming arrivals from Schiphol...").
		Action(func() {
			collected = pipeline.Collect(now)
		}).
		Run()

	if len(collected) == 0 {
		fmt.Println(errorStyle.Render("No upcoming expected or delayed flights found."))
		return nil
	}

	switch view {
	case "city":
		collected, err = filterByCity(collected)
	case "country":
		collected, err = filterByCountry(collected, table)
	}
	if err != nil {
		return err
	}

	upcoming := arrivals.Finalize(collected, time.Now().In(loc))
	if len(upcoming) == 0 {
		fmt.Println(errorStyle.Render("No matching arrivals left after filtering."))
		return nil
	}

	arrivals.RenderTable(os.Stdout, upcoming, time.Now().In(loc))
	return nil
}

// filterByCity keeps arrivals whose resolved city matches the user's input.
func filterByCity(list []arrivals.Arrival) ([]arrivals.Arrival, error) {
	var cityInput string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which city? (e.g. Lisbon)").
				Value(&cityInput),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return nil, err
	}

	// Normalize casing so "lisbon" and "LISBON" both match the table entry
	city := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(cityInput)))

	var filtered []arrivals.Arrival
	for _, a := range list {
		if a.City == city {
			filtered = append(filtered, a)
		}
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Showing arrivals from %s", city)))
	return filtered, nil
}

// filterByCountry keeps arrivals whose destination airport lies in the given
// 2-letter country. The saved country filter from the config is the default.
func filterByCountry(list []arrivals.Arrival, table airports.Table) ([]arrivals.Arrival, error) {
	countryInput := ""
	if cfg, err := config.Load(); err == nil && cfg.SavedCountry != "" {
		countryInput = cfg.SavedCountry
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which country? (2-letter code, e.g. NL)").
				Value(&countryInput),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return nil, err
	}

	country := strings.ToUpper(strings.TrimSpace(countryInput))

	var filtered []arrivals.Arrival
	for _, a := range list {
		if info, ok := table.Lookup(a.Destination); ok && info.Country == country {
			filtered = append(filtered, a)
		}
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Showing arrivals from %s", country)))
	return filtered, nil
}
