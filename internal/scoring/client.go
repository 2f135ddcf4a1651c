// Package scoring talks to the remote fraud-scoring service.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fraudlens/fraudlens/internal/session"
)

// Client issues requests against the scoring service. All calls attach the
// session's bearer credential and are single-shot: transport failures are
// surfaced to the caller, never retried here.
type Client struct {
	httpClient *http.Client
	session    session.Session
	baseURL    string
}

// NewClient creates a scoring client for the given session.
func NewClient(s session.Session) (*Client, error) {
	if s.BaseURL == "" {
		return nil, fmt.Errorf("scoring service base URL is required")
	}

	return &Client{
		session: s,
		baseURL: strings.TrimRight(s.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// post sends a JSON body to path and returns the raw response body after
// checking the status.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.session.Authorize(req)

	return c.do(req)
}

// get issues an authorized GET against path.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.session.Authorize(req)

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
