// Package coda is a typed client for the Coda REST API (v1).
//
// The client is stateless: each method performs a single authenticated
// HTTPS request and decodes the JSON response into a typed result. It is
// safe for concurrent use. The mcp subpackage exposes the same operations
// as Model Context Protocol tools for LLM agents.
package coda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Client talks to the Coda API. Create one with New.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
	debug      bool

	exportPollInterval time.Duration
	maxExportPolls     int
}

// New creates a new Coda client.
func New(cfg Config) (*Client, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		token:     cfg.APIToken,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:             cfg.Logger,
		debug:              cfg.Debug,
		exportPollInterval: cfg.ExportPollInterval,
		maxExportPolls:     cfg.MaxExportPolls,
	}, nil
}

// WithHTTPClient sets a custom http.Client (for testing or custom timeouts).
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

func (c *Client) setHeaders(req *http.Request, requestID string) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
}

// do performs one API request. path is relative to the base URL. body is
// JSON-encoded when non-nil; the response is decoded into out when non-nil.
// Empty bodies (204, 202 with no content) leave out at its zero value.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	requestID := ulid.Make().String()

	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("coda: encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("coda: build request: %w", err)
	}
	c.setHeaders(req, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("coda: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if c.debug {
		c.logger.Debug("api request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", requestID),
		)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("coda: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody, requestID)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResponse, truncate(respBody, 200))
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, out)
}

// newAPIError extracts a message from an error response body.
// Coda error payloads carry either a "message" or an "error" key; anything
// else is surfaced as the truncated raw body.
func newAPIError(statusCode int, body []byte, requestID string) *APIError {
	apiErr := &APIError{StatusCode: statusCode, RequestID: requestID}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
			return apiErr
		case payload.Error != "":
			apiErr.Message = payload.Error
			return apiErr
		}
	}
	if len(bytes.TrimSpace(body)) > 0 {
		apiErr.Message = truncate(body, 200)
	}
	return apiErr
}

// parseRetryAfter reads a Retry-After header, which carries either a
// delay in seconds or an HTTP date. Anything unparseable or in the past
// falls back to 60s.
func parseRetryAfter(header string) time.Duration {
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 60 * time.Second
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}

// escape encodes a path segment. Page, table, column, and row parameters
// accept names as well as IDs, and names can contain anything.
func escape(idOrName string) string {
	return url.PathEscape(idOrName)
}

// queryValues builds query parameters the way the API expects: unset
// values are omitted entirely and booleans are sent as "true"/"false".
type queryValues struct {
	url.Values
}

func newQuery() queryValues {
	return queryValues{Values: url.Values{}}
}

func (q queryValues) setString(key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func (q queryValues) setBool(key string, value bool) {
	q.Set(key, strconv.FormatBool(value))
}

func (q queryValues) setOptBool(key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

func (q queryValues) setInt(key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func (q queryValues) setStrings(key string, values []string) {
	if len(values) > 0 {
		q.Set(key, strings.Join(values, ","))
	}
}
