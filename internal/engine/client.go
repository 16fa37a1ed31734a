package engine

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

// ErrCalculateFailed signals a transport-level failure talking to the pricing
// engine. Non-2xx statuses are not transport failures; they are reported via
// Result so the caller owns the success gate.
var ErrCalculateFailed = errors.New("engine: calculate price call failed")

const (
	calculatePath  = "/v1/prices/calculate"
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

// Result is the raw outcome of one pricing engine call. Body is nil when the
// engine returned an empty payload or one that is not a priced resource.
type Result struct {
	StatusCode int
	Body       *PricedResource
	Raw        []byte
}

// HasBody reports whether the engine returned a decoded priced resource.
func (r Result) HasBody() bool { return r.Body != nil }

// IsSuccess reports whether the status code is in the 2xx range.
func (r Result) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Client calls the external pricing engine over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// ClientOption customises the engine client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithAPIKey sets the bearer credential forwarded on every call.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = strings.TrimSpace(key)
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

// NewClient constructs a pricing engine client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("engine: base URL is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("engine: invalid base URL: %w", err)
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

// CalculatePrice submits the pricing parameter and returns the engine's
// status code, raw payload, and the decoded body when one was sent.
func (c *Client) CalculatePrice(ctx context.Context, param Parameter) (Result, error) {
	payload, err := json.Marshal(param)
	if err != nil {
		return Result{}, fmt.Errorf("%w: encode request: %v", ErrCalculateFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+calculatePath, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrCalculateFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrCalculateFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Result{}, fmt.Errorf("%w: read response: %v", ErrCalculateFailed, err)
	}

	result := Result{StatusCode: resp.StatusCode, Raw: raw}
	if len(bytes.TrimSpace(raw)) == 0 {
		return result, nil
	}

	var body PricedResource
	if err := json.Unmarshal(raw, &body); err != nil {
		// Malformed payloads are left undecoded; the caller treats a missing
		// body on a 2xx status as an engine failure and reports the raw dump.
		return result, nil
	}
	result.Body = &body
	return result, nil
}
