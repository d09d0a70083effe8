package schiphol

import (
	"testing"
	"time"
)

func TestSchipholIntegration_FetchPage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	// Demo credentials from the public API documentation
	client := NewClient("db24436c", "14d969ef174fd67ff4f26d62f120c204")

	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("could not load timezone: %v", err)
	}
	now := time.Now().In(loc)

	flights, next, err := client.FetchPage(ArrivalsURL(now, now.Add(24*time.Hour)))
	if err != nil {
		t.Fatalf("Failed to fetch arrivals page: %v", err)
	}

	if len(flights) == 0 {
		t.Fatal("Expected at least one arrival in the next 24 hours, got 0")
	}

	for _, f := range flights {
		if f.ScheduleDate == "" {
			t.Errorf("Flight missing schedule date: %+v", f)
		}
	}

	// A full day of Schiphol arrivals never fits on one page
	if next == "" {
		t.Errorf("Expected a next page link on page 0")
	}
}
