package resrobot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://api.resrobot.se/v2.1"

// ErrUpstream marks network or HTTP failures talking to the ResRobot API.
// Callers can match it with errors.Is to show a non-fatal message.
var ErrUpstream = errors.New("resrobot upstream error")

// Client interacts with the ResRobot v2.1 journey-planner API
type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// getWithRetries attempts an HTTP GET request up to 3 times for 502/503/504/timeout errors
func (c *Client) getWithRetries(reqURL string) (*http.Response, error) {
	var lastErr error
	var resp *http.Response

	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequest("GET", reqURL, nil)
		if err != nil {
			return nil, err
		}
		// Public APIs often block default Go user agents
		req.Header.Set("User-Agent", "travel-planner/1.0 (https://github.com/Markofbear/travel-planner-2025)")

		resp, lastErr = c.httpClient.Do(req)

		// If request succeeded but gave a transient error code, also retry
		if lastErr == nil && (resp.StatusCode == 503 || resp.StatusCode == 504 || resp.StatusCode == 502) {
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
		} else if lastErr == nil {
			return resp, nil
		}

		if attempt < 2 {
			fmt.Printf("\r\033[K[ResRobot API] Network congested, retrying... (Attempt %d/3)\n", attempt+1)
		}

		time.Sleep(time.Duration(attempt+1) * time.Second)
	}

	return nil, fmt.Errorf("%w: failed after 3 attempts: %v", ErrUpstream, lastErr)
}

// Trips searches journeys between two stop IDs. An empty journey list is a
// valid result, not an error.
func (c *Client) Trips(originID, destinationID string) ([]Trip, error) {
	reqURL := fmt.Sprintf("%s/trip?format=json&originId=%s&destId=%s&numF=6&passlist=true&showPassingPoints=true&accessId=%s",
		baseURL, url.QueryEscape(originID), url.QueryEscape(destinationID), c.apiKey)

	resp, err := c.getWithRetries(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trips: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip response body: %w", err)
	}

	var tripResp TripResponse
	if err := json.Unmarshal(body, &tripResp); err != nil {
		return nil, fmt.Errorf("failed to decode trip JSON: %w", err)
	}

	return tripResp.Trips, nil
}

// DepartureBoard gets the raw departure board for a specific stop ID
func (c *Client) DepartureBoard(stopID string) ([]Departure, error) {
	reqURL := fmt.Sprintf("%s/departureBoard?id=%s&format=json&accessId=%s",
		baseURL, url.QueryEscape(stopID), c.apiKey)

	resp, err := c.getWithRetries(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departure board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read departure board body: %w", err)
	}

	var boardResp DepartureBoardResponse
	if err := json.Unmarshal(body, &boardResp); err != nil {
		return nil, fmt.Errorf("failed to decode departure board JSON: %w", err)
	}

	return boardResp.Departures, nil
}

// ArrivalBoard gets the raw arrival board for a specific stop ID
func (c *Client) ArrivalBoard(stopID string) ([]Arrival, error) {
	reqURL := fmt.Sprintf("%s/arrivalBoard?id=%s&format=json&accessId=%s",
		baseURL, url.QueryEscape(stopID), c.apiKey)

	resp, err := c.getWithRetries(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch arrival board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read arrival board body: %w", err)
	}

	var boardResp ArrivalBoardResponse
	if err := json.Unmarshal(body, &boardResp); err != nil {
		return nil, fmt.Errorf("failed to decode arrival board JSON: %w", err)
	}

	return boardResp.Arrivals, nil
}

// LookupStop searches for stops matching a free-text query using the API's
// server-side fuzzy matching. An empty candidate list means "no matches"
// and is not an error.
func (c *Client) LookupStop(query string) ([]StopCandidate, error) {
	// The trailing question mark asks ResRobot for fuzzy matching
	reqURL := fmt.Sprintf("%s/location.name?input=%s&format=json&accessId=%s",
		baseURL, url.QueryEscape(query+"?"), c.apiKey)

	resp, err := c.getWithRetries(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stop lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop lookup body: %w", err)
	}

	var locResp locationResponse
	if err := json.Unmarshal(body, &locResp); err != nil {
		return nil, fmt.Errorf("failed to decode stop lookup JSON: %w", err)
	}

	// Flatten the two location variants into one candidate list.
	// Entries missing both variants are dropped rather than failing the batch.
	var candidates []StopCandidate
	for _, entry := range locResp.Locations {
		switch {
		case entry.StopLocation != nil:
			candidates = append(candidates, StopCandidate{
				Name: entry.StopLocation.Name,
				ID:   entry.StopLocation.ExtID,
				Lon:  entry.StopLocation.Lon,
				Lat:  entry.StopLocation.Lat,
			})
		case entry.CoordLocation != nil:
			candidates = append(candidates, StopCandidate{
				Name: entry.CoordLocation.Name,
				ID:   entry.CoordLocation.ID,
				Lon:  entry.CoordLocation.Lon,
				Lat:  entry.CoordLocation.Lat,
			})
		}
	}

	return candidates, nil
}
