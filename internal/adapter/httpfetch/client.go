// Package httpfetch implements port.Fetcher over plain HTTP GET with
// streamed response consumption.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hai-def/hla-cache/internal/port"
)

// Client fetches remote resources with a bounded initial-response timeout.
// The streaming phase itself is untimed: a large file on a slow link may
// legitimately take longer than any fixed budget.
type Client struct {
	httpClient *http.Client
}

// Ensure Client implements port.Fetcher
var _ port.Fetcher = (*Client)(nil)

// NewClient creates a new fetch client. responseTimeout bounds connection
// establishment and the arrival of response headers; zero means 300s.
func NewClient(responseTimeout time.Duration) *Client {
	if responseTimeout == 0 {
		responseTimeout = 300 * time.Second
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: responseTimeout,
		}).DialContext,
		ResponseHeaderTimeout: responseTimeout,
		ForceAttemptHTTP2:     true,

		// The payload is already compact text; skipping transparent
		// gzip keeps Content-Length usable for progress reporting.
		DisableCompression: true,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   0, // no total timeout, downloads may be long
		},
	}
}

// Fetch issues a streaming GET for url. The returned length is the
// Content-Length header value, or -1 when the server did not send one.
func (c *Client) Fetch(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return resp.Body, resp.ContentLength, nil
}
