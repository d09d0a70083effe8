package arrivals

import (
	"sort"
	"time"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/airports"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/schiphol"
)

// DefaultMaxPages bounds a single run against an unbounded upstream feed.
const DefaultMaxPages = 100

// DefaultWindow is how far ahead of now arrivals are requested.
const DefaultWindow = 24 * time.Hour

// Pipeline drives the page-by-page fetch, classify and normalize loop.
// Pages are fetched strictly sequentially: the next page's URL is only known
// once the current response has been parsed.
type Pipeline struct {
	Client   *schiphol.Client
	Airports airports.Table
	MaxPages int           // 0 means DefaultMaxPages
	Window   time.Duration // 0 means DefaultWindow
}

// Collect fetches every page of arrivals scheduled inside [now, now+window)
// and returns the pending ones in normalized form. A transport or decode
// failure on any page ends the run quietly with whatever was accumulated so
// far; it is indistinguishable from a clean end of data.
func (p *Pipeline) Collect(now time.Time) []Arrival {
	maxPages := p.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	window := p.Window
	if window <= 0 {
		window = DefaultWindow
	}

	pageURL := schiphol.ArrivalsURL(now, now.Add(window))

	var collected []Arrival
	for page := 0; ; page++ {
		flights, next, err := p.Client.FetchPage(pageURL)
		if err != nil || len(flights) == 0 {
			break
		}

		for _, f := range flights {
			if !IsPending(f, now) {
				continue
			}
			collected = append(collected, Normalize(f, p.Airports))
		}

		if next == "" {
			break
		}
		if page >= maxPages-1 {
			break
		}
		pageURL = next
	}

	return collected
}

// Finalize orders arrivals by their formatted time and drops the ones whose
// time has already passed. The lexicographic sort is safe because the time
// strings are fixed-width zero-padded "HH:MM". This is a second, stricter
// gate on top of the per-flight check in IsPending: fetching the pages takes
// time, so the clock here may be later than the reference instant used there.
func Finalize(list []Arrival, now time.Time) []Arrival {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Time < list[j].Time
	})

	cutoff := now.Format("15:04")
	var upcoming []Arrival
	for _, a := range list {
		if a.Time >= cutoff {
			upcoming = append(upcoming, a)
		}
	}

	return upcoming
}
