package planner

import (
	"testing"
	"time"
)

// journeyDepartingAt builds a minimal one-leg journey whose first (and only)
// stop resolves to the given local Stockholm timestamp.
func journeyDepartingAt(date, clock string) Journey {
	return Journey{
		Legs: []Leg{
			{
				Label: "Bus 55",
				Stops: []StopEvent{
					{Name: "Brunnsparken", Time: clock, Date: date, DepTime: clock, DepDate: date},
				},
			},
		},
	}
}

func TestDepartingWithin_Boundaries(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, stockholm)

	journeys := []Journey{
		journeyDepartingAt("2026-02-25", "08:00:00"), // exactly now: kept
		journeyDepartingAt("2026-02-25", "09:00:00"), // exactly horizon: kept
		journeyDepartingAt("2026-02-25", "09:01:00"), // horizon+1: dropped
		journeyDepartingAt("2026-02-25", "07:59:00"), // already departed: dropped
	}

	kept := DepartingWithin(journeys, now, 60)
	if len(kept) != 2 {
		t.Fatalf("expected 2 journeys inside the horizon, got %d", len(kept))
	}

	// Order must be preserved from input
	first, _ := kept[0].EarliestDeparture()
	second, _ := kept[1].EarliestDeparture()
	if !first.Before(second) {
		t.Errorf("expected input order to be preserved")
	}
}

func TestDepartingWithin_FloorsTowardNegativeInfinity(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 30, 0, stockholm)

	// 08:00:00 is 30 seconds in the past: floor gives -1, so it is excluded
	// rather than clamped to 0
	journeys := []Journey{journeyDepartingAt("2026-02-25", "08:00:00")}
	if kept := DepartingWithin(journeys, now, 60); len(kept) != 0 {
		t.Errorf("expected a departure 30s in the past to be excluded, got %d", len(kept))
	}

	// 08:01:00 is 30 seconds ahead: floor gives 0, so it is included
	journeys = []Journey{journeyDepartingAt("2026-02-25", "08:01:00")}
	if kept := DepartingWithin(journeys, now, 60); len(kept) != 1 {
		t.Errorf("expected a departure 30s ahead to be included, got %d", len(kept))
	}
}

func TestDepartingWithin_SkipsUnusableJourneys(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, stockholm)

	journeys := []Journey{
		{}, // no legs
		journeyDepartingAt("not-a-date", "08:30:00"),
		journeyDepartingAt("2026-02-25", "08:30:00"),
	}

	kept := DepartingWithin(journeys, now, 60)
	if len(kept) != 1 {
		t.Fatalf("expected only the parseable journey, got %d", len(kept))
	}
}

func TestMatchingStop_CaseInsensitiveSubstring(t *testing.T) {
	journey := Journey{
		Legs: []Leg{
			{
				Label: "Train X",
				Stops: []StopEvent{
					{Name: "Stockholm Central", Time: "11:20:00", Date: "2026-02-25"},
				},
			},
		},
	}
	journeys := []Journey{journey}

	for _, query := range []string{"stockholm", "CENTRAL", "holm Cent"} {
		if kept := MatchingStop(journeys, query); len(kept) != 1 {
			t.Errorf("expected query %q to match 'Stockholm Central'", query)
		}
	}

	if kept := MatchingStop(journeys, "Stokholm"); len(kept) != 0 {
		t.Errorf("expected misspelled query not to match")
	}
}

func TestMatchingStop_AllMatchesInOrder(t *testing.T) {
	mk := func(name string) Journey {
		return Journey{Legs: []Leg{{Label: "Bus", Stops: []StopEvent{{Name: name, Time: "08:00:00", Date: "2026-02-25"}}}}}
	}

	journeys := []Journey{mk("Alingsås"), mk("Göteborg"), mk("Alingsås station")}

	kept := MatchingStop(journeys, "alingsås")
	if len(kept) != 2 {
		t.Fatalf("expected both matching journeys to be returned, got %d", len(kept))
	}
	if kept[0].Stops()[0].Name != "Alingsås" || kept[1].Stops()[0].Name != "Alingsås station" {
		t.Errorf("expected matches in input order, got %q then %q", kept[0].Stops()[0].Name, kept[1].Stops()[0].Name)
	}
}

func TestMatchingStop_EmptyNamesNeverMatch(t *testing.T) {
	journeys := []Journey{
		{Legs: []Leg{{Label: "Bus", Stops: []StopEvent{{Name: "", Time: "08:00:00", Date: "2026-02-25"}}}}},
	}

	if kept := MatchingStop(journeys, ""); len(kept) != 0 {
		t.Errorf("expected journeys with only unnamed stops to never match, got %d", len(kept))
	}
}

func TestQueries_EmptyInput(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, stockholm)

	if kept := DepartingWithin(nil, now, 60); len(kept) != 0 {
		t.Errorf("expected empty result for empty journey list")
	}
	if kept := MatchingStop(nil, "stockholm"); len(kept) != 0 {
		t.Errorf("expected empty result for empty journey list")
	}
}
