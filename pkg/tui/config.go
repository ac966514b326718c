package tui

import (
	"fmt"

	"github.com/Markofbear/travel-planner-2025/pkg/config"

	"github.com/charmbracelet/huh"
)

// RunConfigTUI launches the interactive experience for managing configurations
func (a *App) RunConfigTUI() error {
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
						huh.NewOption("Set Home Stop (For Departure Boards)", "home"),
						huh.NewOption("Set Weather City", "city"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "home" {
			err = a.runSetHomeStopTUI(cfg)
		} else if action == "city" {
			err = runSetWeatherCityTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.travelplanner.json) ---"))
			if cfg.HomeStopName == "" {
				fmt.Println("Home Stop: Not set")
			} else {
				fmt.Printf("Home Stop: %s (ID: %s)\n", cfg.HomeStopName, cfg.HomeStopID)
			}

			fmt.Printf("Weather City: %s\n", cfg.WeatherCity)
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func (a *App) runSetHomeStopTUI(cfg *config.AppConfig) error {
	var query string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search for your home stop:").
				Placeholder("e.g. Brunnsparken").
				Value(&query),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	stop, ok, err := a.pickStop("hemmahållplats", query)
	if err != nil || !ok {
		return err
	}

	cfg.HomeStopName = stop.Name
	cfg.HomeStopID = stop.ID
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Home stop saved as: %s (ID: %s)\n", stop.Name, stop.ID)))
	return nil
}

func runSetWeatherCityTUI(cfg *config.AppConfig) error {
	var city string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default city for the weather panel:").
				Placeholder("e.g. Göteborg").
				Value(&city),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.WeatherCity = city
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Weather city changed to: %s\n", city)))
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var color string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick an accent color").
				Options(
					huh.NewOption("Blue (default)", "33"),
					huh.NewOption("Purple", "99"),
					huh.NewOption("Green", "42"),
					huh.NewOption("Orange", "208"),
					huh.NewOption("Pink", "205"),
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

	// Re-render the accent immediately so the change is visible
	fmt.Println(GetCustomTheme(color).Focused.Title.Render("\n✅ Accent color updated.\n"))
	return nil
}
