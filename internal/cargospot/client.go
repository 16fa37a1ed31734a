// Package cargospot talks to the cargospot airwaybill service, which owns
// house-waybill bookkeeping for consolidated shipments.
package cargospot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrHAWBCountFailed signals a failed house-waybill-count lookup.
var ErrHAWBCountFailed = errors.New("cargospot: house waybill count lookup failed")

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 64 << 10
)

// Client calls the cargospot airwaybill endpoints.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// ClientOption customises the cargospot client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithTimeout adjusts the per-call timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpc.Timeout = timeout
		}
	}
}

// NewClient constructs a cargospot client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("cargospot: base URL is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("cargospot: invalid base URL: %w", err)
	}
	c := &Client{
		baseURL: trimmed,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// HouseWaybillCount fetches the number of house waybills attached to the
// airwaybill. A successful response without a body yields a nil count, which
// callers treat as zero rather than as an error.
func (c *Client) HouseWaybillCount(ctx context.Context, airwaybillID string) (*int, error) {
	id := strings.TrimSpace(airwaybillID)
	if id == "" {
		return nil, fmt.Errorf("%w: airwaybill id is required", ErrHAWBCountFailed)
	}

	endpoint := fmt.Sprintf("%s/v1/airwaybills/%s/hawb-count", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHAWBCountFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHAWBCountFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrHAWBCountFailed, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrHAWBCountFailed, err)
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var count int
	if err := json.Unmarshal(raw, &count); err != nil {
		return nil, fmt.Errorf("%w: decode count: %v", ErrHAWBCountFailed, err)
	}
	return &count, nil
}
