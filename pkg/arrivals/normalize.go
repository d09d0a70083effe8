package arrivals

import (
	"fmt"
	"time"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/airports"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/schiphol"
)

// Arrival is the normalized, display-ready shape of one flight. It is built
// once per pending flight and never mutated afterwards.
type Arrival struct {
	Flight      string // e.g. "HV5412"
	Date        string // "02-01-2006"
	Time        string // "15:04", zero-padded
	Destination string
	City        string
	Flag        string
	Status      string // "Delayed" or "Expected"
	Gate        string
}

// Normalize converts a pending raw flight into an Arrival, resolving the
// destination against the given airport table. It is total: missing fields
// fall back to documented defaults and never cause an error.
func Normalize(f schiphol.Flight, table airports.Table) Arrival {
	destination := "Unknown"
	if len(f.Route.Destinations) > 0 {
		destination = f.Route.Destinations[0]
	}

	status := "Expected"
	if f.HasState("DEL") {
		status = "Delayed"
	}

	city := destination
	flag := ""
	if info, ok := table.Lookup(destination); ok {
		city = info.City
		flag = flagEmoji(info.Country)
	}

	number := ""
	if f.FlightNumber != 0 {
		number = fmt.Sprintf("%d", f.FlightNumber)
	}

	return Arrival{
		Flight:      f.PrefixIATA + number,
		Date:        formatDate(f.ScheduleDate),
		Time:        formatTime(f.ScheduleTime),
		Destination: destination,
		City:        city,
		Flag:        flag,
		Status:      status,
		Gate:        f.Gate,
	}
}

// formatDate rewrites "2006-01-02" as "02-01-2006", shifted back one calendar
// day. The upstream feed reports schedule dates a day ahead of the local
// arrivals board; the shift compensates for that reporting convention. Dates
// that fail to parse pass through verbatim with no shift.
func formatDate(scheduleDate string) string {
	if scheduleDate == "" {
		return ""
	}

	d, err := time.Parse("2006-01-02", scheduleDate)
	if err != nil {
		return scheduleDate
	}

	return d.AddDate(0, 0, -1).Format("02-01-2006")
}

// formatTime truncates "15:04:05" to "15:04".
func formatTime(scheduleTime string) string {
	if len(scheduleTime) >= 5 {
		return scheduleTime[:5]
	}
	return scheduleTime
}

// flagEmoji converts a 2-letter country code into its flag by mapping each
// letter onto the corresponding regional indicator symbol.
func flagEmoji(countryCode string) string {
	if len(countryCode) != 2 {
		return ""
	}

	const base = 0x1F1E6 // regional indicator symbol letter A
	a := rune(countryCode[0]&^0x20) - 'A'
	b := rune(countryCode[1]&^0x20) - 'A'
	if a < 0 || a > 25 || b < 0 || b > 25 {
		return ""
	}

	return string(rune(base+a)) + string(rune(base+b))
}
