package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the shared HTTP client for all source adapters. It carries
// the configured user agent and the fixed inter-request delay used for
// rate-limiting etiquette.
type Client struct {
	httpClient *http.Client
	userAgent  string
	delay      time.Duration
}

func NewClient(userAgent string, delaySeconds int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  userAgent,
		delay:      time.Duration(delaySeconds) * time.Second,
	}
}

// Throttle sleeps the configured scraping delay. Adapters call it
// between successive external requests; it is a constant pause, not a
// backoff scheme.
func (c *Client) Throttle() {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

// Get performs a GET request with the configured user agent and returns
// the response body for 200 responses.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// Do executes an arbitrary request with the configured user agent,
// returning the body for 2xx responses.
func (c *Client) Do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return data, nil
}
