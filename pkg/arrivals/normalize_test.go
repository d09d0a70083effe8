package arrivals

import (
	"testing"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/airports"
	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/schiphol"
)

func TestNormalize_FullRecord(t *testing.T) {
	f := schiphol.Flight{
		PrefixIATA:        "KL",
		FlightNumber:      1234,
		ScheduleDate:      "2024-03-10",
		ScheduleTime:      "07:45:00",
		Gate:              "D7",
		PublicFlightState: schiphol.PublicFlightState{FlightStates: []string{"SCH"}},
		Route:             schiphol.Route{Destinations: []string{"AMS"}},
	}

	a := Normalize(f, airports.Default())

	if a.Flight != "KL1234" {
		t.Errorf("expected flight designator KL1234, got %s", a.Flight)
	}
	// The feed reports schedule dates one day ahead; 2024-03-10 renders as 09-03-2024
	if a.Date != "09-03-2024" {
		t.Errorf("expected shifted date 09-03-2024, got %s", a.Date)
	}
	if a.Time != "07:45" {
		t.Errorf("expected truncated time 07:45, got %s", a.Time)
	}
	if a.City != "Amsterdam" {
		t.Errorf("expected city Amsterdam, got %s", a.City)
	}
	if a.Flag != "\U0001F1F3\U0001F1F1" {
		t.Errorf("expected the Netherlands flag, got %q", a.Flag)
	}
	if a.Status != "Expected" {
		t.Errorf("expected status Expected, got %s", a.Status)
	}
	if a.Gate != "D7" {
		t.Errorf("expected gate D7, got %s", a.Gate)
	}
}

func TestNormalize_DelayedStatus(t *testing.T) {
	f := schiphol.Flight{
		PublicFlightState: schiphol.PublicFlightState{FlightStates: []string{"SCH", "DEL"}},
	}

	if a := Normalize(f, airports.Default()); a.Status != "Delayed" {
		t.Errorf("expected status Delayed when DEL is present, got %s", a.Status)
	}
}

func TestNormalize_UnknownDestination(t *testing.T) {
	f := schiphol.Flight{
		Route: schiphol.Route{Destinations: []string{"XYZ"}},
	}

	a := Normalize(f, airports.Default())

	if a.City != "XYZ" {
		t.Errorf("expected city to fall back to the raw code, got %s", a.City)
	}
	if a.Flag != "" {
		t.Errorf("expected empty flag for unmapped destination, got %q", a.Flag)
	}
}

func TestNormalize_MissingFields(t *testing.T) {
	// Normalize must be total: an empty record still produces a display record
	a := Normalize(schiphol.Flight{}, airports.Default())

	if a.Destination != "Unknown" {
		t.Errorf("expected destination Unknown for empty route, got %s", a.Destination)
	}
	if a.Flight != "" || a.Date != "" || a.Time != "" || a.Gate != "" {
		t.Errorf("expected empty fallbacks, got %+v", a)
	}
	if a.Status != "Expected" {
		t.Errorf("expected default status Expected, got %s", a.Status)
	}
}

func TestNormalize_UnparseableDatePassesThrough(t *testing.T) {
	f := schiphol.Flight{ScheduleDate: "10/03/2024"}

	if a := Normalize(f, airports.Default()); a.Date != "10/03/2024" {
		t.Errorf("expected unparseable date verbatim with no shift, got %s", a.Date)
	}
}

func TestFlagEmoji(t *testing.T) {
	if got := flagEmoji("NL"); got != "\U0001F1F3\U0001F1F1" {
		t.Errorf("expected NL flag, got %q", got)
	}
	if got := flagEmoji("pt"); got != "\U0001F1F5\U0001F1F9" {
		t.Errorf("expected lowercase codes to work, got %q", got)
	}
	if got := flagEmoji(""); got != "" {
		t.Errorf("expected empty flag for empty code, got %q", got)
	}
	if got := flagEmoji("N1"); got != "" {
		t.Errorf("expected empty flag for non-letter code, got %q", got)
	}
}
