package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://api.openweathermap.org/data/2.5"

// Client handles HTTP requests to the OpenWeatherMap API
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current retrieves the current conditions for a city by name.
// Weather is purely presentational, so callers typically render an
// apology instead of failing when this returns an error.
func (c *Client) Current(city string) (*Current, error) {
	reqURL := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s", baseURL, url.QueryEscape(city), c.apiKey)

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "travel-planner/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 404 {
		return nil, fmt.Errorf("no weather data for city %q", city)
	} else if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var current Current
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		return nil, fmt.Errorf("failed to decode JSON response: %w", err)
	}

	return &current, nil
}
