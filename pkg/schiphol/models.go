package schiphol

// FlightList is the top level JSON response from the flights endpoint
type FlightList struct {
	Flights []Flight `json:"flights"`
}

// Flight is the API's raw representation of a single flight
type Flight struct {
	FlightName        string            `json:"flightName"`
	FlightNumber      int               `json:"flightNumber"`
	PrefixIATA        string            `json:"prefixIATA"`
	ScheduleDate      string            `json:"scheduleDate"` // "2006-01-02"
	ScheduleTime      string            `json:"scheduleTime"` // "15:04:05"
	Gate              string            `json:"gate"`
	FlightDirection   string            `json:"flightDirection"`
	PublicFlightState PublicFlightState `json:"publicFlightState"`
	Route             Route             `json:"route"`
}

// PublicFlightState wraps the list of state codes (SCH, DEL, EXP, LND, ARR, CNX, ...)
type PublicFlightState struct {
	FlightStates []string `json:"flightStates"`
}

// Route holds the destination airport codes for a flight
type Route struct {
	Destinations []string `json:"destinations"`
}

// HasState reports whether any of the given state codes is present on the flight.
func (f Flight) HasState(codes ...string) bool {
	for _, s := range f.PublicFlightState.FlightStates {
		for _, c := range codes {
			if s == c {
				return true
			}
		}
	}
	return false
}
