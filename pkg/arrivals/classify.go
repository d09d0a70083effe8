package arrivals

import (
	"time"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/schiphol"
)

const scheduleLayout = "2006-01-02T15:04:05"

// IsPending decides whether a raw flight still counts as an upcoming arrival
// relative to now. Landed and cancelled states always lose; after that the
// flight must be scheduled, delayed or expected, and its schedule instant (if
// one can be computed) must not lie in the past. A schedule date/time that is
// missing or unparseable does not disqualify a flight — formatting degrades
// gracefully downstream instead.
func IsPending(f schiphol.Flight, now time.Time) bool {
	if f.HasState("LND", "ARR", "CNX") {
		return false
	}

	if !f.HasState("SCH", "DEL", "EXP") {
		return false
	}

	if f.ScheduleDate != "" && f.ScheduleTime != "" {
		at, err := time.ParseInLocation(scheduleLayout, f.ScheduleDate+"T"+f.ScheduleTime, now.Location())
		if err == nil && at.Before(now) {
			return false
		}
	}

	return true
}
