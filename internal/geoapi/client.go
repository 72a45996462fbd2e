package geoapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// MinQueryLength is the shortest query, in characters, that reaches the places provider.
const MinQueryLength = 2

// Config holds the provider endpoints and credentials.
type Config struct {
	PlacesBaseURL     string
	DirectionsBaseURL string
	GoogleAPIKey      string
	MapboxToken       string
	// Profile is the directions profile, "driving" or "walking".
	Profile string
	Timeout time.Duration
}

// Client talks to the places search provider and the directions provider.
// Every call is independent: no retries, no memoization.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates a new provider client. A nil httpClient gets a default one bounded by cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Profile == "" {
		cfg.Profile = "driving"
	}
	return &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logger.With().Str("component", "geoapi").Logger(),
	}
}

// Profile returns the directions profile the client requests routes with.
func (c *Client) Profile() string {
	return c.cfg.Profile
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
