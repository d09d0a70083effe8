package schiphol

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://api.schiphol.nl"

const flightsPath = "/public-flights/flights"

// Client interacts with the Schiphol public flights API
type Client struct {
	httpClient *http.Client
	appID      string
	appKey     string
}

// NewClient creates an API client with the given application credentials.
func NewClient(appID, appKey string) *Client {
	return &Client{
		// The upstream never specifies a deadline; 30s guards against a
		// hanging request stalling the whole run.
		httpClient: &http.Client{Timeout: 30 * time.Second},
		appID:      appID,
		appKey:     appKey,
	}
}

// SetBaseURL points the client at a different API root (scheme + authority).
// Used when SCHIPHOL_BASE_URL is configured.
func SetBaseURL(root string) {
	baseURL = root
}

// ArrivalsURL builds the page-0 query for arrivals scheduled inside [from, to).
// Times are rendered as local ISO-8601 without an offset, as the API expects.
func ArrivalsURL(from, to time.Time) string {
	params := url.Values{}
	params.Set("fromDateTime", from.Format("2006-01-02T15:04:05"))
	params.Set("toDateTime", to.Format("2006-01-02T15:04:05"))
	params.Set("searchDateTimeField", "scheduleDateTime")
	params.Set("sort", "+scheduleTime")
	params.Set("page", "0")
	params.Set("flightDirection", "A")

	return fmt.Sprintf("%s%s?%s", baseURL, flightsPath, params.Encode())
}

// FetchPage retrieves a single page of flight data. It returns the page's
// flights and the absolute URL of the next page ("" when this is the last
// one). One attempt only; callers decide what a failure means for them.
func (c *Client) FetchPage(pageURL string) ([]Flight, string, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, "", err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("ResourceVersion", "v4")
	req.Header.Set("app_id", c.appID)
	req.Header.Set("app_key", c.appKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch flights page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var list FlightList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, "", fmt.Errorf("failed to decode flights JSON: %w", err)
	}

	return list.Flights, NextPageURL(resp.Header, baseURL), nil
}
