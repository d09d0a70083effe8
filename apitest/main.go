package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Flight struct {
	PrefixIATA   string `json:"prefixIATA"`
	FlightNumber int    `json:"flightNumber"`
	ScheduleTime string `json:"scheduleTime"`
	Route        struct {
		Destinations []string `json:"destinations"`
	} `json:"route"`
	PublicFlightState struct {
		FlightStates []string `json:"flightStates"`
	} `json:"publicFlightState"`
}

type FlightList struct {
	Flights []Flight `json:"flights"`
}

func main() {
	loc, _ := time.LoadLocation("Europe/Amsterdam")
	now := time.Now().In(loc)

	params := url.Values{}
	params.Set("fromDateTime", now.Format("2006-01-02T15:04:05"))
	params.Set("toDateTime", now.Add(24*time.Hour).Format("2006-01-02T15:04:05"))
	params.Set("searchDateTimeField", "scheduleDateTime")
	params.Set("sort", "+scheduleTime")
	params.Set("page", "0")
	params.Set("flightDirection", "A")

	reqURL := "https://api.schiphol.nl/public-flights/flights?" + params.Encode()

	fmt.Println("Fetching live arrivals from the Schiphol API...")

	req, _ := http.NewRequest("GET", reqURL, nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("ResourceVersion", "v4")
	req.Header.Set("app_id", "db24436c")
	req.Header.Set("app_key", "14d969ef174fd67ff4f26d62f120c204")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var list FlightList
	if err := json.Unmarshal(body, &list); err != nil {
		fmt.Println("Error decoding JSON:", err)
		return
	}

	fmt.Println("\n--- Next Arrivals: Schiphol ---")
	fmt.Println("Link header:", resp.Header.Get("Link"))
	for _, f := range list.Flights {
		dest := "???"
		if len(f.Route.Destinations) > 0 {
			dest = f.Route.Destinations[0]
		}
		fmt.Printf("[%s] %s%d from %s %v\n",
			f.ScheduleTime,
			f.PrefixIATA,
			f.FlightNumber,
			dest,
			f.PublicFlightState.FlightStates)
	}
}
