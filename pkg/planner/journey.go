package planner

import (
	"math"
	"time"
)

// StopEvent is one flattened row of a trip table: a single scheduled stop
// with its resolved effective time and the label of the leg it belongs to.
type StopEvent struct {
	Name  string
	ExtID string
	Lat   float64
	Lon   float64

	DepTime string // "15:04:05", empty when the vehicle only arrives here
	DepDate string // "2006-01-02"
	ArrTime string // empty at the origin of a leg
	ArrDate string

	// Resolved effective timestamp: arrival when present, else departure.
	// Never empty for a row that survived normalization.
	Time string
	Date string

	LegLabel string // e.g. "Länstrafik - Buss 55"
}

// Leg is an ordered run of stops served by one vehicle
type Leg struct {
	Label string
	Stops []StopEvent
}

// Journey is one complete origin-to-destination option.
// It is built fresh per trip search and never mutated afterwards.
type Journey struct {
	Legs []Leg
}

// Marker is one map-marker row handed to whatever renders the route
type Marker struct {
	Lat   float64
	Lon   float64
	Label string
}

const instantLayout = "2006-01-02 15:04:05"

// ResRobot reports naive local times, so interpret them in Swedish time
// regardless of the host timezone
var stockholm = loadStockholm()

func loadStockholm() *time.Location {
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		return time.Local
	}
	return loc
}

func parseInstant(date, clock string) (time.Time, error) {
	return time.ParseInLocation(instantLayout, date+" "+clock, stockholm)
}

// MinutesUntil floors toward negative infinity, so an instant 30 seconds
// in the past is -1, not 0
func MinutesUntil(t, now time.Time) int {
	return int(math.Floor(t.Sub(now).Seconds() / 60))
}

// DepartureInstant parses the stop's scheduled departure, falling back to
// the resolved time when the vehicle only arrives here
func (s StopEvent) DepartureInstant() (time.Time, bool) {
	date, clock := s.DepDate, s.DepTime
	if clock == "" {
		date, clock = s.Date, s.Time
	}
	instant, err := parseInstant(date, clock)
	if err != nil {
		return time.Time{}, false
	}
	return instant, true
}

// Stops returns all stop rows of the journey, legs concatenated in order
func (j Journey) Stops() []StopEvent {
	var all []StopEvent
	for _, leg := range j.Legs {
		all = append(all, leg.Stops...)
	}
	return all
}

// StopCount counts the stops along the way. The final arrival is a
// destination, not a stop, so it is excluded.
func (j Journey) StopCount() int {
	n := len(j.Stops()) - 1
	if n < 0 {
		return 0
	}
	return n
}

// TransferCount counts vehicle changes as distinct leg labels minus one
func (j Journey) TransferCount() int {
	seen := make(map[string]bool)
	for _, leg := range j.Legs {
		seen[leg.Label] = true
	}
	n := len(seen) - 1
	if n < 0 {
		return 0
	}
	return n
}

// EarliestDeparture returns the earliest resolved instant across the stops
// of the first leg. ok is false for an empty journey or when no stop of the
// first leg carries a parseable timestamp.
func (j Journey) EarliestDeparture() (time.Time, bool) {
	if len(j.Legs) == 0 {
		return time.Time{}, false
	}

	var earliest time.Time
	found := false
	for _, s := range j.Legs[0].Stops {
		instant, err := parseInstant(s.Date, s.Time)
		if err != nil {
			continue
		}
		if !found || instant.Before(earliest) {
			earliest = instant
			found = true
		}
	}

	return earliest, found
}

// Markers yields one (lat, lon, label) row per stop for map rendering
func (j Journey) Markers() []Marker {
	var markers []Marker
	for _, s := range j.Stops() {
		label := s.Name
		if s.DepTime != "" {
			label = s.Name + " - Avgång: " + s.DepTime
		}
		markers = append(markers, Marker{Lat: s.Lat, Lon: s.Lon, Label: label})
	}
	return markers
}
