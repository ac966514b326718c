package planner

import (
	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"
)

// TripSource is the slice of the ResRobot client the planner needs.
// Tests substitute a stub here instead of a live HTTP client.
type TripSource interface {
	Trips(originID, destinationID string) ([]resrobot.Trip, error)
}

// Planner runs trip searches and memoizes the normalized result per
// (origin, destination) pair. The memo only ever changes from a
// user-triggered action, so there is no expiry and no locking; a fresh
// result is obtained by calling Refresh first.
type Planner struct {
	source TripSource
	memo   map[string][]Journey
}

func New(source TripSource) *Planner {
	return &Planner{
		source: source,
		memo:   make(map[string][]Journey),
	}
}

// Plan returns the normalized journeys between two stops, fetching from the
// trip source only on the first call per pair. An upstream "no journeys"
// result is memoized too, as an empty slice.
func (p *Planner) Plan(originID, destinationID string) ([]Journey, error) {
	key := memoKey(originID, destinationID)
	if journeys, ok := p.memo[key]; ok {
		return journeys, nil
	}

	trips, err := p.source.Trips(originID, destinationID)
	if err != nil {
		// Failures are not memoized, so the next attempt retries upstream
		return nil, err
	}

	journeys := NormalizeAll(trips)
	p.memo[key] = journeys
	return journeys, nil
}

// Refresh forgets the memoized result for one pair so the next Plan call
// hits the API again
func (p *Planner) Refresh(originID, destinationID string) {
	delete(p.memo, memoKey(originID, destinationID))
}

func memoKey(originID, destinationID string) string {
	return originID + "|" + destinationID
}
