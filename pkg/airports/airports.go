package airports

// Info holds the city and country for a single IATA airport code.
type Info struct {
	City    string
	Country string // ISO 3166-1 alpha-2
}

// Table maps 3-letter IATA airport codes to their metadata. It is read-only
// after construction and gets injected into the normalizer rather than being
// consulted as package state.
type Table map[string]Info

// Lookup returns the info for a code, reporting whether it is known.
func (t Table) Lookup(code string) (Info, bool) {
	info, ok := t[code]
	return info, ok
}

// Default returns the built-in table covering the destinations commonly seen
// on the Schiphol arrivals feed.
func Default() Table {
	return Table{
		"AMS": {City: "Amsterdam", Country: "NL"},
		"LIN": {City: "Milan", Country: "IT"},
		"BHX": {City: "Birmingham", Country: "GB"},
		"LPA": {City: "Gran Canaria", Country: "ES"},
		"BOM": {City: "Mumbai", Country: "IN"},
		"MUC": {City: "Munich", Country: "DE"},
		"ORD": {City: "Chicago", Country: "US"},
		"IST": {City: "Istanbul", Country: "TR"},
		"NCE": {City: "Nice", Country: "FR"},
		"OPO": {City: "Porto", Country: "PT"},
		"SVQ": {City: "Seville", Country: "ES"},
		"PSA": {City: "Pisa", Country: "IT"},
		"RAK": {City: "Marrakech", Country: "MA"},
		"AYT": {City: "Antalya", Country: "TR"},
		"HER": {City: "Heraklion", Country: "GR"},
		"SPC": {City: "Santa Cruz de La Palma", Country: "ES"},
		"LIS": {City: "Lisbon", Country: "PT"},
		"VLC": {City: "Valencia", Country: "ES"},
	}
}
