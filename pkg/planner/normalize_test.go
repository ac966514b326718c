package planner

import (
	"testing"

	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"
)

// twoLegTrip builds the canonical bus-then-train fixture: 3 stops on the
// bus leg, 4 on the train leg.
func twoLegTrip() resrobot.Trip {
	return resrobot.Trip{
		LegList: resrobot.LegList{
			Legs: []resrobot.Leg{
				{
					Name: "Bus 55",
					Stops: &resrobot.Stops{
						Stops: []resrobot.Stop{
							{Name: "Brunnsparken", ExtID: "740025603", Lat: 57.707, Lon: 11.967, DepTime: "08:00:00", DepDate: "2026-02-25"},
							{Name: "Lilla Bommen", ExtID: "740025604", Lat: 57.710, Lon: 11.965, ArrTime: "08:03:00", ArrDate: "2026-02-25", DepTime: "08:04:00", DepDate: "2026-02-25"},
							{Name: "Centralstationen", ExtID: "740000002", Lat: 57.708, Lon: 11.973, ArrTime: "08:08:00", ArrDate: "2026-02-25"},
						},
					},
				},
				{
					Name: "Train X",
					Stops: &resrobot.Stops{
						Stops: []resrobot.Stop{
							{Name: "Centralstationen", ExtID: "740000002", Lat: 57.708, Lon: 11.973, DepTime: "08:15:00", DepDate: "2026-02-25"},
							{Name: "Alingsås", ExtID: "740000522", Lat: 57.930, Lon: 12.532, ArrTime: "08:45:00", ArrDate: "2026-02-25", DepTime: "08:46:00", DepDate: "2026-02-25"},
							{Name: "Skövde", ExtID: "740000298", Lat: 58.390, Lon: 13.844, ArrTime: "09:30:00", ArrDate: "2026-02-25", DepTime: "09:31:00", DepDate: "2026-02-25"},
							{Name: "Stockholm Central", ExtID: "740000001", Lat: 59.330, Lon: 18.058, ArrTime: "11:20:00", ArrDate: "2026-02-25"},
						},
					},
				},
			},
		},
	}
}

func TestNormalize_TwoLegTrip(t *testing.T) {
	journey := Normalize(twoLegTrip())

	stops := journey.Stops()
	if len(stops) != 7 {
		t.Fatalf("expected 7 flattened stop rows, got %d", len(stops))
	}

	// First three rows belong to the bus, remaining four to the train
	for i := 0; i < 3; i++ {
		if stops[i].LegLabel != "Bus 55" {
			t.Errorf("row %d: expected leg label 'Bus 55', got %q", i, stops[i].LegLabel)
		}
	}
	for i := 3; i < 7; i++ {
		if stops[i].LegLabel != "Train X" {
			t.Errorf("row %d: expected leg label 'Train X', got %q", i, stops[i].LegLabel)
		}
	}

	// Document order must be preserved exactly
	wantNames := []string{"Brunnsparken", "Lilla Bommen", "Centralstationen", "Centralstationen", "Alingsås", "Skövde", "Stockholm Central"}
	for i, name := range wantNames {
		if stops[i].Name != name {
			t.Errorf("row %d: expected stop %q, got %q", i, name, stops[i].Name)
		}
	}
}

func TestNormalize_ResolvedTimePrefersArrival(t *testing.T) {
	journey := Normalize(twoLegTrip())
	stops := journey.Stops()

	// Origin has no arrival, so resolved time falls back to departure
	if stops[0].Time != "08:00:00" || stops[0].Date != "2026-02-25" {
		t.Errorf("origin: expected resolved time from departure, got %s %s", stops[0].Date, stops[0].Time)
	}

	// Intermediate stop has both, arrival wins
	if stops[1].Time != "08:03:00" {
		t.Errorf("intermediate: expected resolved time 08:03:00 (arrival), got %s", stops[1].Time)
	}

	// Every surviving row must have a resolved timestamp
	for i, s := range stops {
		if s.Time == "" || s.Date == "" {
			t.Errorf("row %d: resolved time/date must never be empty, got %+v", i, s)
		}
	}
}

func TestNormalize_SkipsLegsWithoutStops(t *testing.T) {
	trip := resrobot.Trip{
		LegList: resrobot.LegList{
			Legs: []resrobot.Leg{
				{Name: "Walk", Stops: nil},
				{Name: "Bus 16", Stops: &resrobot.Stops{}},
				{
					Name: "Tram 6",
					Stops: &resrobot.Stops{
						Stops: []resrobot.Stop{
							{Name: "Korsvägen", DepTime: "09:00:00", DepDate: "2026-02-25"},
							{Name: "Chalmers", ArrTime: "09:05:00", ArrDate: "2026-02-25"},
						},
					},
				},
			},
		},
	}

	journey := Normalize(trip)
	if len(journey.Legs) != 1 {
		t.Fatalf("expected the two stopless legs to be skipped, got %d legs", len(journey.Legs))
	}
	if len(journey.Stops()) != 2 {
		t.Errorf("expected 2 rows from the tram leg, got %d", len(journey.Stops()))
	}
}

func TestNormalize_DropsStopsWithoutTimestamps(t *testing.T) {
	trip := resrobot.Trip{
		LegList: resrobot.LegList{
			Legs: []resrobot.Leg{
				{
					Name: "Bus 55",
					Stops: &resrobot.Stops{
						Stops: []resrobot.Stop{
							{Name: "Valid", DepTime: "09:00:00", DepDate: "2026-02-25"},
							{Name: "Broken"}, // no timestamps at all
						},
					},
				},
			},
		},
	}

	journey := Normalize(trip)
	stops := journey.Stops()
	if len(stops) != 1 {
		t.Fatalf("expected the malformed stop to be dropped, got %d rows", len(stops))
	}
	if stops[0].Name != "Valid" {
		t.Errorf("expected the surviving row to be 'Valid', got %q", stops[0].Name)
	}
}

func TestNormalize_EmptyTrip(t *testing.T) {
	journey := Normalize(resrobot.Trip{})

	if len(journey.Legs) != 0 {
		t.Errorf("expected empty journey for a trip with zero legs, got %d legs", len(journey.Legs))
	}
	if journey.StopCount() != 0 {
		t.Errorf("expected stop count 0 for empty journey, got %d", journey.StopCount())
	}
	if journey.TransferCount() != 0 {
		t.Errorf("expected transfer count 0 for empty journey, got %d", journey.TransferCount())
	}
	if _, ok := journey.EarliestDeparture(); ok {
		t.Errorf("expected no earliest departure for empty journey")
	}
}

func TestJourney_DerivedCounts(t *testing.T) {
	journey := Normalize(twoLegTrip())

	// 7 rows total; the final arrival does not count as a stop along the way
	if journey.StopCount() != 6 {
		t.Errorf("expected stop count 6, got %d", journey.StopCount())
	}

	// Two distinct leg labels means one transfer
	if journey.TransferCount() != 1 {
		t.Errorf("expected 1 transfer, got %d", journey.TransferCount())
	}

	departure, ok := journey.EarliestDeparture()
	if !ok {
		t.Fatalf("expected an earliest departure")
	}
	if departure.Format("15:04:05") != "08:00:00" {
		t.Errorf("expected earliest departure 08:00:00, got %s", departure.Format("15:04:05"))
	}
}

func TestJourney_Markers(t *testing.T) {
	journey := Normalize(twoLegTrip())

	markers := journey.Markers()
	if len(markers) != 7 {
		t.Fatalf("expected one marker per stop row, got %d", len(markers))
	}

	if markers[0].Lat != 57.707 || markers[0].Lon != 11.967 {
		t.Errorf("unexpected coordinates for first marker: %+v", markers[0])
	}
	if markers[0].Label != "Brunnsparken - Avgång: 08:00:00" {
		t.Errorf("unexpected label for first marker: %q", markers[0].Label)
	}

	// The terminal stop has no departure, so its label is just the name
	last := markers[len(markers)-1]
	if last.Label != "Stockholm Central" {
		t.Errorf("unexpected label for terminal marker: %q", last.Label)
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	trips := []resrobot.Trip{twoLegTrip(), {}, twoLegTrip()}

	journeys := NormalizeAll(trips)
	if len(journeys) != 3 {
		t.Fatalf("expected 3 journeys, got %d", len(journeys))
	}
	if len(journeys[1].Legs) != 0 {
		t.Errorf("expected the middle journey to stay empty")
	}
}
