package fred

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.stlouisfed.org/fred"

// Client is a minimal FRED observations client. Series values come back as
// strings, with "." standing in for missing observations.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type Observation struct {
	Date  time.Time
	Value float64
}

type observationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// SeriesObservations fetches the observations of a series over [start, end],
// in date order. Missing observations ("." values) are dropped.
func (c *Client) SeriesObservations(seriesID string, start, end time.Time) ([]Observation, error) {
	query := url.Values{}
	query.Set("series_id", seriesID)
	query.Set("api_key", c.APIKey)
	query.Set("file_type", "json")
	query.Set("observation_start", start.Format(time.DateOnly))
	query.Set("observation_end", end.Format(time.DateOnly))

	reqURL := fmt.Sprintf("%s/series/observations?%s", c.BaseURL, query.Encode())
	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch observations for %s: %w", seriesID, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := observationsResponse{}
	if err := json.Unmarshal(responseBytes, &responseBody); err != nil {
		return nil, fmt.Errorf("failed to parse observations for %s: %w", seriesID, err)
	}

	out := []Observation{}
	for _, obs := range responseBody.Observations {
		if obs.Value == "." {
			continue
		}
		date, err := time.Parse(time.DateOnly, obs.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse observation date %q: %w", obs.Date, err)
		}
		value, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse observation value %q: %w", obs.Value, err)
		}
		out = append(out, Observation{Date: date, Value: value})
	}

	return out, nil
}
