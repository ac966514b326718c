package planner

import (
	"github.com/Markofbear/travel-planner-2025/pkg/resrobot"
)

// Normalize flattens one raw ResRobot trip into a Journey: legs in document
// order, each leg's stops in document order, every row tagged with the
// owning leg's label and its resolved effective time.
//
// Malformed pieces degrade instead of failing: a leg without stops
// contributes zero rows, a stop without any timestamp is dropped, and a
// trip with no usable legs yields an empty Journey.
func Normalize(trip resrobot.Trip) Journey {
	var legs []Leg

	for _, rawLeg := range trip.LegList.Legs {
		if rawLeg.Stops == nil {
			continue
		}

		var stops []StopEvent
		for _, rawStop := range rawLeg.Stops.Stops {
			event, ok := normalizeStop(rawStop, rawLeg.Name)
			if !ok {
				continue
			}
			stops = append(stops, event)
		}

		if len(stops) == 0 {
			continue
		}
		legs = append(legs, Leg{Label: rawLeg.Name, Stops: stops})
	}

	return Journey{Legs: legs}
}

// normalizeStop resolves the effective time of a raw stop, preferring
// arrival over departure. A stop with neither is unusable.
func normalizeStop(raw resrobot.Stop, legLabel string) (StopEvent, bool) {
	resolvedTime := raw.ArrTime
	resolvedDate := raw.ArrDate
	if resolvedTime == "" {
		resolvedTime = raw.DepTime
		resolvedDate = raw.DepDate
	}
	if resolvedTime == "" || resolvedDate == "" {
		return StopEvent{}, false
	}

	return StopEvent{
		Name:     raw.Name,
		ExtID:    raw.ExtID,
		Lat:      raw.Lat,
		Lon:      raw.Lon,
		DepTime:  raw.DepTime,
		DepDate:  raw.DepDate,
		ArrTime:  raw.ArrTime,
		ArrDate:  raw.ArrDate,
		Time:     resolvedTime,
		Date:     resolvedDate,
		LegLabel: legLabel,
	}, true
}

// NormalizeAll converts a full trip search response, one Journey per trip,
// preserving the upstream relevance order
func NormalizeAll(trips []resrobot.Trip) []Journey {
	journeys := make([]Journey, 0, len(trips))
	for _, trip := range trips {
		journeys = append(journeys, Normalize(trip))
	}
	return journeys
}
