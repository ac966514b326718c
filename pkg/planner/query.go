package planner

import (
	"strings"
	"time"
)

// DepartingWithin keeps the journeys whose earliest departure falls inside
// [now, now+horizonMinutes], both bounds inclusive, using the same
// floor-to-minute comparison as the departure board. Input order is
// preserved and all matches are returned; callers wanting a single journey
// take the first element themselves.
func DepartingWithin(journeys []Journey, now time.Time, horizonMinutes int) []Journey {
	var kept []Journey
	for _, j := range journeys {
		departure, ok := j.EarliestDeparture()
		if !ok {
			continue
		}
		minutes := MinutesUntil(departure, now)
		if minutes >= 0 && minutes <= horizonMinutes {
			kept = append(kept, j)
		}
	}
	return kept
}

// MatchingStop keeps the journeys where any stop name contains the query,
// case-insensitively. Stops without a name never match. Input order is
// preserved and all matches are returned.
func MatchingStop(journeys []Journey, nameSubstring string) []Journey {
	needle := strings.ToLower(nameSubstring)

	var kept []Journey
	for _, j := range journeys {
		if journeyHasStop(j, needle) {
			kept = append(kept, j)
		}
	}
	return kept
}

func journeyHasStop(j Journey, lowerNeedle string) bool {
	for _, s := range j.Stops() {
		if s.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(s.Name), lowerNeedle) {
			return true
		}
	}
	return false
}
