package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/frankwiersma/amsterdam-flight-vibe/pkg/arrivals"
)

func TestGenerateICS(t *testing.T) {
	list := []arrivals.Arrival{
		{
			Flight:      "KL1234",
			Date:        "09-03-2024",
			Time:        "07:45",
			Destination: "LIS",
			City:        "Lisbon",
			Status:      "Expected",
			Gate:        "D7",
		},
	}

	var buf bytes.Buffer
	if err := GenerateICS(list, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Arrival KL1234 from Lisbon") {
		t.Errorf("expected ICS to contain the arrival summary, got:\n%s", output)
	}

	if !strings.Contains(output, "LOCATION:Amsterdam Airport Schiphol") {
		t.Errorf("expected ICS to contain the airport location")
	}

	// 09-Mar-2024 07:45 Amsterdam time is 06:45 UTC
	if !strings.Contains(output, "DTSTART:20240309T064500Z") {
		t.Errorf("expected UTC start time 20240309T064500Z, got:\n%s", output)
	}
}

func TestGenerateICS_SkipsMalformedEntries(t *testing.T) {
	list := []arrivals.Arrival{
		{Flight: "XX1", Date: "not-a-date", Time: "??"},
		{Flight: "KL2", Date: "09-03-2024", Time: "10:00", City: "Munich"},
	}

	var buf bytes.Buffer
	if err := GenerateICS(list, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if strings.Contains(output, "XX1") {
		t.Errorf("expected the malformed arrival to be skipped")
	}
	if !strings.Contains(output, "SUMMARY:Arrival KL2 from Munich") {
		t.Errorf("expected the valid arrival to be exported, got:\n%s", output)
	}
}
