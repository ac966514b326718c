package tui

import (
	"github.com/Markofbear/travel-planner-2025/pkg/config"
	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"
	"github.com/Markofbear/travel-planner-2025/pkg/weather"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// These act as fallbacks initially; GetTheme replaces the accent with
	// the user's saved color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// GetTheme loads the user's saved accent color and constructs the UI theme
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := "33" // Default blue

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so plain print statements also receive the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a huh.Theme built around the provided lipgloss
// color string, used for live-previewing a color before saving it
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// App wires the TUI screens to the API clients constructed once at startup,
// so no screen reaches for a hidden global client
type App struct {
	Transit *resrobot.Client
	Weather *weather.Client
}

// Run launches the main menu interactive form experience
func (a *App) Run() error {
	for {
		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("🗺️ Plan a Trip", "trip"),
						huh.NewOption("🚌 Departure Board", "board"),
						huh.NewOption("🔍 Search Stops", "stops"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		var err error
		switch action {
		case "trip":
			err = a.RunTripTUI()
		case "board":
			err = a.RunBoardTUI()
		case "stops":
			err = a.RunStopSearchTUI()
		case "config":
			err = a.RunConfigTUI()
		case "quit":
			return nil
		}

		if err != nil {
			return err
		}
	}
}
