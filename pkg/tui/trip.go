package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/Markofbear/travel-planner-2025/pkg/exporter"
	"github.com/Markofbear/travel-planner-2025/pkg/planner"
	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RunTripTUI launches the interactive trip-planning flow: search both
// endpoints, pick candidates, plan, then inspect one journey.
func (a *App) RunTripTUI() error {
	var originName, destinationName string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Från:").
				Placeholder("e.g. Göteborg Centralstation").
				Value(&originName),

			huh.NewInput().
				Title("Till:").
				Placeholder("e.g. Stockholm Central").
				Value(&destinationName),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	origin, ok, err := a.pickStop("ursprungshållplats", originName)
	if err != nil || !ok {
		return err
	}
	destination, ok, err := a.pickStop("destinationshållplats", destinationName)
	if err != nil || !ok {
		return err
	}

	// Weather is decoration: failures render an apology, never an error
	a.weatherSection(originName)

	trips := planner.New(a.Transit)

	journeys, err := a.fetchJourneys(trips, origin, destination)
	if err != nil {
		return err
	}
	if len(journeys) == 0 {
		fmt.Println(errorStyle.Render("No journeys found between those stops."))
		return nil
	}

	for {
		choice, done, err := pickJourney(journeys)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if choice == refreshChoice {
			trips.Refresh(origin.ID, destination.ID)
			journeys, err = a.fetchJourneys(trips, origin, destination)
			if err != nil {
				return err
			}
			if len(journeys) == 0 {
				fmt.Println(errorStyle.Render("No journeys found between those stops."))
				return nil
			}
			continue
		}

		if err := a.showJourney(journeys[choice]); err != nil {
			return err
		}
	}
}

// RunStopSearchTUI looks up stops by free text and lists their IDs and
// coordinates, the starting point for any other query
func (a *App) RunStopSearchTUI() error {
	var query string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search for a stop:").
				Placeholder("e.g. Brunnsparken").
				Value(&query),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	var candidates []resrobot.StopCandidate
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching stops matching '%s'...", query)).
		Action(func() {
			candidates, err = a.Transit.LookupStop(query)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("could not search stops: %w", err)
	}

	if len(candidates) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No stops found for '%s'.", query)))
		return nil
	}

	fmt.Println(accentStyle.Render("\n--- 🔍 Matching Stops ---"))
	fmt.Printf("%-50s %-12s %s\n", "Name", "extId", "Coordinates")
	for _, c := range candidates {
		fmt.Printf("%-50s %-12s %.4f, %.4f\n", c.Name, c.ID, c.Lat, c.Lon)
	}
	fmt.Println()

	return nil
}

// pickStop resolves free text to one stop candidate via the lookup API.
// ok is false when there is nothing to pick from.
func (a *App) pickStop(role, query string) (resrobot.StopCandidate, bool, error) {
	var candidates []resrobot.StopCandidate
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching stops matching '%s'...", query)).
		Action(func() {
			candidates, err = a.Transit.LookupStop(query)
		}).
		Run()

	if err != nil {
		return resrobot.StopCandidate{}, false, fmt.Errorf("could not search stops: %w", err)
	}

	if len(candidates) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No stops found for '%s'.", query)))
		return resrobot.StopCandidate{}, false, nil
	}

	options := make([]huh.Option[int], 0, len(candidates))
	for i, c := range candidates {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.ID), i))
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("Välj %s:", role)).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return resrobot.StopCandidate{}, false, err
	}

	return candidates[selected], true, nil
}

func (a *App) fetchJourneys(trips *planner.Planner, origin, destination resrobot.StopCandidate) ([]planner.Journey, error) {
	var journeys []planner.Journey
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Planning trip %s -> %s...", origin.Name, destination.Name)).
		Action(func() {
			journeys, err = trips.Plan(origin.ID, destination.ID)
		}).
		Run()

	if err != nil {
		return nil, fmt.Errorf("could not plan trip: %w", err)
	}
	return journeys, nil
}

const refreshChoice = -1

// pickJourney lets the user choose one of the planned journeys, refresh the
// search, or go back. done is true when the user is finished.
func pickJourney(journeys []planner.Journey) (int, bool, error) {
	options := make([]huh.Option[int], 0, len(journeys)+2)
	for i, j := range journeys {
		options = append(options, huh.NewOption(journeyLabel(j), i))
	}
	options = append(options,
		huh.NewOption("🔄 Refresh timetable", refreshChoice),
		huh.NewOption("Back", -2),
	)

	var choice int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("📅 Välj en resa:").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return 0, false, err
	}
	if choice == -2 {
		return 0, true, nil
	}
	return choice, false, nil
}

// journeyLabel summarizes a journey as "08:00 -> 11:20 · Bus 55 -> Train X"
func journeyLabel(j planner.Journey) string {
	stops := j.Stops()
	if len(stops) == 0 {
		return "Okänd resa"
	}

	label := fmt.Sprintf("%s -> %s", clock(stops[0].Time), clock(stops[len(stops)-1].Time))
	for i, leg := range j.Legs {
		if i == 0 {
			label += " · " + leg.Label
		} else {
			label += " -> " + leg.Label
		}
	}
	return label
}

// clock trims ResRobot's "15:04:05" down to "15:04"
func clock(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

// showJourney prints the flattened stop table, the derived trip stats, and
// the map-marker rows, then offers to export the journey as a calendar
func (a *App) showJourney(journey planner.Journey) error {
	now := time.Now()

	fmt.Println(accentStyle.Render("\n--- 🧭 Restabell ---"))
	fmt.Printf("🚏 Antal byten: %d\n", journey.TransferCount())
	fmt.Printf("🛑 Antal stopp på vägen: %d\n\n", journey.StopCount())

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	fmt.Printf("%-40s %-10s %-10s %s\n", "Namn", "Avgång", "Ankomst", "Tid kvar (min)")
	for _, stop := range journey.Stops() {
		remaining := ""
		if instant, ok := stop.DepartureInstant(); ok {
			minutes := planner.MinutesUntil(instant, now)
			if minutes < 0 {
				minutes = 0 // Display only: a departed stop shows 0, not negative
			}
			remaining = fmt.Sprintf("%d", minutes)
		}

		fmt.Printf("%-40s %-10s %-10s %s\n",
			nameStyle.Render(fmt.Sprintf("%-40s", stop.Name)),
			clock(stop.DepTime),
			clock(stop.ArrTime),
			remaining,
		)
	}

	fmt.Println(accentStyle.Render("\n--- 🗺️ Kartmarkörer ---"))
	for _, m := range journey.Markers() {
		fmt.Printf("  • %.4f, %.4f  %s\n", m.Lat, m.Lon, m.Label)
	}
	fmt.Println()

	var export bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export this journey to an .ics calendar file?").
				Value(&export),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if !export {
		return nil
	}

	filename := fmt.Sprintf("trip_%s.ics", now.Format("20060102_1504"))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create ics file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(journey, file); err != nil {
		return fmt.Errorf("could not generate ICS: %w", err)
	}

	fmt.Printf("✨ Successfully exported journey to: %s\n", filename)
	return nil
}

// weatherSection renders current conditions for the origin city, mirroring
// the weather panel of the dashboard this tool grew out of
func (a *App) weatherSection(city string) {
	w, err := a.Weather.Current(city)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Kunde inte hämta vädret för %s.", city)))
		return
	}

	titler := cases.Title(language.Swedish)

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- ⛅ Vädret i %s, %s ---", w.Name, w.Sys.Country)))
	fmt.Printf("🌡️  %.1f°C\n", w.Main.Temp)
	fmt.Printf("💨 %.1f m/s\n", w.Wind.Speed)
	fmt.Printf("☁️  %s\n", titler.String(w.Description()))
	fmt.Printf("💧 %d%%\n", w.Main.Humidity)
	fmt.Printf("🖼️  %s\n\n", w.IconURL())
}
