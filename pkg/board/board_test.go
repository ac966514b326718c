package board

import (
	"reflect"
	"testing"
	"time"

	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"
)

func rawDeparture(clock, direction string) resrobot.Departure {
	return resrobot.Departure{
		Name:      "Länstrafik - Buss 55",
		Time:      clock,
		Date:      "2026-02-25",
		Direction: direction,
		ProductAtStop: &resrobot.ProductAtStop{
			CatOutL:       "Länstrafik - Buss",
			DisplayNumber: "55",
		},
	}
}

func TestFilter_HorizonScenario(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, stockholm)

	// now+5, now+59, now+61, now-2: with the default horizon exactly the
	// first two survive, in original order
	raw := []resrobot.Departure{
		rawDeparture("08:05:00", "Heden"),
		rawDeparture("08:59:00", "Frölunda"),
		rawDeparture("09:01:00", "Angered"),
		rawDeparture("07:58:00", "Bergsjön"),
	}

	kept := Filter(raw, now, DefaultHorizonMinutes)
	if len(kept) != 2 {
		t.Fatalf("expected 2 departures inside the horizon, got %d", len(kept))
	}
	if kept[0].Direction != "Heden" || kept[1].Direction != "Frölunda" {
		t.Errorf("expected upstream order preserved, got %q then %q", kept[0].Direction, kept[1].Direction)
	}
	if kept[0].MinutesToDeparture != 5 {
		t.Errorf("expected 5 minutes to departure, got %d", kept[0].MinutesToDeparture)
	}
	if kept[1].MinutesToDeparture != 59 {
		t.Errorf("expected 59 minutes to departure, got %d", kept[1].MinutesToDeparture)
	}
}

func TestFilter_BoundariesInclusive(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, stockholm)

	raw := []resrobot.Departure{
		rawDeparture("08:00:00", "AtNow"),      // 0 minutes: kept
		rawDeparture("09:00:00", "AtHorizon"),  // 60 minutes: kept
		rawDeparture("09:01:00", "PastWindow"), // 61 minutes: dropped
		rawDeparture("07:59:00", "Departed"),   // -1 minutes: dropped
	}

	kept := Filter(raw, now, 60)
	if len(kept) != 2 {
		t.Fatalf("expected both boundary departures to be kept, got %d", len(kept))
	}
	if kept[0].MinutesToDeparture != 0 || kept[1].MinutesToDeparture != 60 {
		t.Errorf("expected minutes 0 and 60, got %d and %d", kept[0].MinutesToDeparture, kept[1].MinutesToDeparture)
	}
}

func TestFilter_FloorsTowardNegativeInfinity(t *testing.T) {
	// 30 seconds past the departure must floor to -1 and be excluded,
	// not truncate toward zero and slip in
	now := time.Date(2026, 2, 25, 8, 0, 30, 0, stockholm)

	kept := Filter([]resrobot.Departure{rawDeparture("08:00:00", "JustGone")}, now, 60)
	if len(kept) != 0 {
		t.Fatalf("expected a departure 30s in the past to be excluded, got %d", len(kept))
	}

	kept = Filter([]resrobot.Departure{rawDeparture("08:01:00", "Soon")}, now, 60)
	if len(kept) != 1 {
		t.Fatalf("expected a departure 30s ahead to be kept, got %d", len(kept))
	}
	if kept[0].MinutesToDeparture != 0 {
		t.Errorf("expected 30s ahead to floor to 0 minutes, got %d", kept[0].MinutesToDeparture)
	}
}

func TestFilter_DropsUnparseableEntries(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, stockholm)

	raw := []resrobot.Departure{
		{Time: "garbage", Date: "2026-02-25", Direction: "Broken"},
		{Time: "08:10:00", Date: "", Direction: "NoDate"},
		rawDeparture("08:10:00", "Fine"),
	}

	kept := Filter(raw, now, 60)
	if len(kept) != 1 {
		t.Fatalf("expected unparseable rows dropped without failing the batch, got %d rows", len(kept))
	}
	if kept[0].Direction != "Fine" {
		t.Errorf("expected the parseable row to survive, got %q", kept[0].Direction)
	}
}

func TestFilter_MissingProductDefaults(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, stockholm)

	raw := []resrobot.Departure{
		{Time: "08:10:00", Date: "2026-02-25", Direction: "Somewhere"},
	}

	kept := Filter(raw, now, 60)
	if len(kept) != 1 {
		t.Fatalf("expected 1 row, got %d", len(kept))
	}
	if kept[0].Transport != "Unknown" || kept[0].Line != "N/A" {
		t.Errorf("expected placeholder transport/line, got %q / %q", kept[0].Transport, kept[0].Line)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, stockholm)

	raw := []resrobot.Departure{
		rawDeparture("08:05:00", "Heden"),
		rawDeparture("08:45:00", "Frölunda"),
	}

	first := Filter(raw, now, 60)
	second := Filter(raw, now, 60)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical output for identical input and frozen now.\nFirst: %+v\nSecond: %+v", first, second)
	}
}

func TestSortByMinutes(t *testing.T) {
	deps := []Departure{
		{Direction: "B", MinutesToDeparture: 30},
		{Direction: "A", MinutesToDeparture: 5},
		{Direction: "C", MinutesToDeparture: 55},
	}

	sorted := SortByMinutes(deps)

	if sorted[0].Direction != "A" || sorted[1].Direction != "B" || sorted[2].Direction != "C" {
		t.Errorf("expected sort by minutes, got %+v", sorted)
	}

	// The input slice must not be reordered in place
	if deps[0].Direction != "B" {
		t.Errorf("expected SortByMinutes to leave its input untouched")
	}
}

func TestIcon(t *testing.T) {
	cases := []struct {
		transport string
		want      string
	}{
		{"Länstrafik - Buss", "🚌"},
		{"Regional Tåg", "🚆"},
		{"Länstrafik - Spårväg", "🚋"},
		{"Anropsstyrd trafik Taxi", "🚖"},
		{"Färja", " "},
	}

	for _, c := range cases {
		if got := Icon(c.transport); got != c.want {
			t.Errorf("Icon(%q) = %q, want %q", c.transport, got, c.want)
		}
	}
}
