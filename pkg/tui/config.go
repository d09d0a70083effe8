package tui

import (
	"fmt"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Export Path", "export"),
						huh.NewOption("Set Saved Country Filter", "country"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "export":
			err = runSetExportPathTUI(cfg)
		case "country":
			err = runSetCountryTUI(cfg)
		case "view":
			fmt.Printf("%+v\n", *cfg)
		}

		if err != nil {
			return err
		}
	}
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	color := cfg.AccentColor

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick an accent color").
				Options(
					huh.NewOption("Blue", "39"),
					huh.NewOption("Purple", "99"),
					huh.NewOption("Green", "42"),
					huh.NewOption("Orange", "214"),
					huh.NewOption("Red", "196"),
				).
				Value(&color),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = color
	if err := config.Save(cfg); err != nil {
		return err
	}

	preview := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	fmt.Println(preview.Render("Accent color saved."))
	return nil
}

func runSetExportPathTUI(cfg *config.AppConfig) error {
	path := cfg.DefaultExportPath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default ICS export path").
				Placeholder("arrivals.ics").
				Value(&path),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultExportPath = path
	return config.Save(cfg)
}

func runSetCountryTUI(cfg *config.AppConfig) error {
	country := cfg.SavedCountry

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Country filter (2-letter code, e.g. NL)").
				Value(&country),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedCountry = country
	return config.Save(cfg)
}
