package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/arrivals"

	ics "github.com/arran4/golang-ical"
)

// slotDuration is how long each arrival blocks out on the calendar.
const slotDuration = 30 * time.Minute

// GenerateICS writes the arrivals as calendar events, one VEVENT per flight
// at its scheduled time. Arrivals whose date or time cannot be parsed are
// skipped rather than aborting the export.
func GenerateICS(list []arrivals.Arrival, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	for i, a := range list {
		startTime, err := time.ParseInLocation("02-01-2006 15:04", fmt.Sprintf("%s %s", a.Date, a.Time), loc)
		if err != nil {
			continue // Skip malformed entries
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(startTime.Add(slotDuration))
		event.SetSummary(fmt.Sprintf("Arrival %s from %s", a.Flight, a.City))
		event.SetLocation("Amsterdam Airport Schiphol")

		description := fmt.Sprintf("Status: %s\nFrom: %s (%s)", a.Status, a.City, a.Destination)
		if a.Gate != "" {
			description += fmt.Sprintf("\nGate: %s", a.Gate)
		}
		event.SetDescription(description)
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("failed to serialize calendar: %w", err)
	}

	return nil
}
