package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a featured-trips request.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps the response size read from the backend.
const maxBodyBytes = 4 << 20

// Fetcher retrieves featured trips.
type Fetcher interface {
	// Featured returns the featured trips, or an empty slice if they
	// could not be retrieved.
	Featured(ctx context.Context, category string) []Trip
}

// Client fetches trips from the catalog backend over HTTP.
type Client struct {
	apiURL    string
	assetBase string
	http      *http.Client
	logger    *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithAssetBase sets the URL relative image references are resolved
// against. Defaults to the API URL.
func WithAssetBase(base string) ClientOption {
	return func(c *Client) { c.assetBase = base }
}

// WithClientLogger sets the logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the backend at apiURL.
func NewClient(apiURL string, timeout time.Duration, opts ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		apiURL: strings.TrimSuffix(apiURL, "/"),
		http:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.assetBase == "" {
		c.assetBase = c.apiURL
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Fetch requests GET /api/trips, optionally filtered by category, and
// returns the trips with image references made absolute.
func (c *Client) Fetch(ctx context.Context, category string) ([]Trip, error) {
	endpoint := c.apiURL + "/api/trips"
	if category != "" {
		endpoint += "?" + url.Values{"category": {category}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch trips: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch trips: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read trips: %w", err)
	}

	list, err := parseTrips(body)
	if err != nil {
		return nil, err
	}
	return normalizeAll(c.assetBase, list), nil
}

// Featured is Fetch with failures logged and reduced to an empty result.
func (c *Client) Featured(ctx context.Context, category string) []Trip {
	list, err := c.Fetch(ctx, category)
	if err != nil {
		c.logger.Warn("featured trips unavailable", "url", c.apiURL, "error", err)
		return []Trip{}
	}
	return list
}

// parseTrips decodes a JSON array of trips. An empty body is an empty list.
func parseTrips(data []byte) ([]Trip, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Trip{}, nil
	}

	var list []Trip
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse trips: %w", err)
	}
	if list == nil {
		list = []Trip{}
	}
	return list, nil
}
