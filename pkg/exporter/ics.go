package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/Markofbear/travel-planner-2025/pkg/planner"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes a planned journey as a calendar, one event per leg,
// so a trip can be dropped into any calendar app
func GenerateICS(journey planner.Journey, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// Timezone location for Sweden
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	layout := "2006-01-02 15:04:05"

	for i, leg := range journey.Legs {
		if len(leg.Stops) == 0 {
			continue
		}

		first := leg.Stops[0]
		last := leg.Stops[len(leg.Stops)-1]

		startTime, err := time.ParseInLocation(layout, first.Date+" "+first.Time, loc)
		if err != nil {
			continue // Skip malformed legs
		}

		endTime, err := time.ParseInLocation(layout, last.Date+" "+last.Time, loc)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetSummary(fmt.Sprintf("🚌 %s", leg.Label))
		event.SetLocation(first.Name)

		description := fmt.Sprintf("%s -> %s\n\nStops:\n", first.Name, last.Name)
		for j, stop := range leg.Stops {
			description += fmt.Sprintf("%d. [%s] %s\n", j+1, stop.Time, stop.Name)
		}
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
