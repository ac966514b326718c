package tui

import (
	"fmt"
	"time"

	"github.com/Markofbear/travel-planner-2025/pkg/board"
	"github.com/Markofbear/travel-planner-2025/pkg/config"
	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunBoardTUI launches the interactive departure board: resolve a stop,
// fetch its board, and show what leaves within the chosen horizon.
func (a *App) RunBoardTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	stop, ok, err := a.resolveBoardStop(cfg)
	if err != nil || !ok {
		return err
	}

	var horizon int
	horizonForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How far ahead?").
				Options(
					huh.NewOption("30 minutes", 30),
					huh.NewOption("60 minutes", board.DefaultHorizonMinutes),
					huh.NewOption("120 minutes", 120),
				).
				Value(&horizon),
		),
	).WithTheme(GetTheme())

	if err := horizonForm.Run(); err != nil {
		return err
	}

	var raw []resrobot.Departure
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching departures for %s...", stop.Name)).
		Action(func() {
			raw, fetchErr = a.Transit.DepartureBoard(stop.ID)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not fetch departures: %w", fetchErr)
	}

	departures := board.Filter(raw, time.Now(), horizon)

	if len(departures) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No upcoming departures found in the next %d minutes.", horizon)))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🚏 Avgångar: %s ---", stop.Name)))
	fmt.Printf("%-4s %-8s %-30s %s\n", "Typ", "Linje", "Destination", "Nästa (min)")

	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	for _, d := range departures {
		fmt.Printf("%-4s %-8s %-30s %d\n",
			board.Icon(d.Transport),
			lineStyle.Render(fmt.Sprintf("%-8s", d.Line)),
			d.Direction,
			d.MinutesToDeparture,
		)
	}
	fmt.Println()

	return nil
}

// resolveBoardStop offers the saved home stop as a shortcut before falling
// back to a free-text search
func (a *App) resolveBoardStop(cfg *config.AppConfig) (resrobot.StopCandidate, bool, error) {
	if cfg.HomeStopID != "" {
		var useHome bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Use your saved stop %q?", cfg.HomeStopName)).
					Value(&useHome),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return resrobot.StopCandidate{}, false, err
		}
		if useHome {
			return resrobot.StopCandidate{Name: cfg.HomeStopName, ID: cfg.HomeStopID}, true, nil
		}
	}

	var query string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which stop?").
				Placeholder("e.g. Brunnsparken").
				Value(&query),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return resrobot.StopCandidate{}, false, err
	}

	return a.pickStop("hållplats", query)
}
