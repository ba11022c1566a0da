// Package status fetches the service status from the status API for the
// status page.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable is returned when the status API cannot be reached or
// answers with a non-2xx code.
var ErrUnavailable = errors.New("status api unavailable")

// ErrMalformed is returned when the status API answers 2xx but the body is
// not a JSON object with a string "status" field.
var ErrMalformed = errors.New("status api response malformed")

// Client queries GET {baseURL}/api/status.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for baseURL.  A zero timeout means none.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

// Fetch returns the status string reported by the API.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/status", nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: http %d", ErrUnavailable, resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	s, ok := body["status"].(string)
	if !ok {
		return "", fmt.Errorf("%w: missing status field", ErrMalformed)
	}
	return s, nil
}
