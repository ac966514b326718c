// Package board flattens raw departure-board responses into display rows
// and filters them to an upcoming time window.
package board

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"
)

// DefaultHorizonMinutes is the look-ahead window used when the caller has
// no opinion
const DefaultHorizonMinutes = 60

// Departure is one flattened board row. MinutesToDeparture is relative to
// the instant Filter was called with, not the fetch time.
type Departure struct {
	Transport          string // long category, e.g. "Länstrafik - Buss"
	Line               string
	Direction          string
	Date               string
	Time               string
	MinutesToDeparture int
}

const instantLayout = "2006-01-02 15:04:05"

var stockholm = loadStockholm()

func loadStockholm() *time.Location {
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		return time.Local
	}
	return loc
}

// Filter flattens raw departures and keeps those leaving between now and
// now+horizonMinutes, both bounds inclusive. Minutes are floored toward
// negative infinity, so anything already departed is negative and excluded
// rather than clamped. Entries that fail to parse are dropped without
// failing the batch, and upstream order is preserved.
func Filter(raw []resrobot.Departure, now time.Time, horizonMinutes int) []Departure {
	var kept []Departure

	for _, entry := range raw {
		instant, err := time.ParseInLocation(instantLayout, entry.Date+" "+entry.Time, stockholm)
		if err != nil {
			continue
		}

		minutes := int(math.Floor(instant.Sub(now).Seconds() / 60))
		if minutes < 0 || minutes > horizonMinutes {
			continue
		}

		transport := "Unknown"
		line := "N/A"
		if entry.ProductAtStop != nil {
			if entry.ProductAtStop.CatOutL != "" {
				transport = entry.ProductAtStop.CatOutL
			}
			if entry.ProductAtStop.DisplayNumber != "" {
				line = entry.ProductAtStop.DisplayNumber
			}
		}

		kept = append(kept, Departure{
			Transport:          transport,
			Line:               line,
			Direction:          entry.Direction,
			Date:               entry.Date,
			Time:               entry.Time,
			MinutesToDeparture: minutes,
		})
	}

	return kept
}

// SortByMinutes returns a new slice ordered by minutes to departure.
// Filter itself preserves upstream order; sorting is the caller's choice.
func SortByMinutes(deps []Departure) []Departure {
	sorted := make([]Departure, len(deps))
	copy(sorted, deps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinutesToDeparture < sorted[j].MinutesToDeparture
	})
	return sorted
}

// Icon maps a Swedish transport category to a display icon
func Icon(transport string) string {
	transport = strings.ToLower(transport)

	switch {
	case strings.Contains(transport, "buss"):
		return "🚌"
	case strings.Contains(transport, "tåg"):
		return "🚆"
	case strings.Contains(transport, "spårväg"), strings.Contains(transport, "spårvagn"):
		return "🚋"
	case strings.Contains(transport, "taxi"):
		return "🚖"
	default:
		return " "
	}
}
