// Package backend adapts the logistics backend's REST API behind the ports.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logistics-copilot/internal/platform/apperror"
	"logistics-copilot/internal/platform/obs"
)

// Calls are bounded by a fixed timeout; there is no per-call override and no
// retry. A call that is in flight runs to completion or timeout.
const requestTimeout = 60 * time.Second

// Client is the single transport choke point for the backend. It owns the
// base address, the timeout, the default content type, and the
// classification of "no response" (network failure, reported generically)
// versus "error response" (application failure, carrying the server detail).
//
// Configuration is read-only after construction.
type Client struct {
	base    string
	session *http.Client
	logger  *slog.Logger

	// sessionID binds optimizations and manifests to this client run.
	sessionID string
	// driverName is recorded on created manifests.
	driverName string
}

type Option func(*Client)

// WithSessionID pins the session ID instead of leaving it empty.
func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

// WithDriverName sets the driver name recorded on manifests.
func WithDriverName(name string) Option {
	return func(c *Client) { c.driverName = name }
}

// WithHTTPClient replaces the underlying http.Client. Tests use this to
// shorten the timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.session = hc }
}

func NewClient(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is empty")
	}
	if logger == nil {
		return nil, errors.New("backend logger is nil")
	}

	c := &Client{
		base:       base,
		session:    &http.Client{Timeout: requestTimeout},
		logger:     logger,
		driverName: "Driver_001",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SessionID returns the session this client binds its calls to.
func (c *Client) SessionID() string { return c.sessionID }

// detailBody is FastAPI's error envelope.
type detailBody struct {
	Detail string `json:"detail"`
}

// send performs one backend call: marshal, transmit, classify, decode.
// body and out may be nil. A transport-level failure (no response) becomes a
// KindNetwork error with the generic message; a response with status >= 400
// becomes a KindApplication error carrying the server's detail when present.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload []byte
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s body: %w", path, err)
		}
		payload = b
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Info("backend request",
		"req_id", obs.RequestID(ctx), "method", method, "path", path,
		"payload", string(payload))

	resp, err := c.session.Do(req)
	if err != nil {
		// No response at all: infrastructure failure, reported generically.
		c.logger.Error("backend unreachable",
			"req_id", obs.RequestID(ctx), "method", method, "path", path, "err", err)
		return apperror.Network(fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("backend response unreadable",
			"req_id", obs.RequestID(ctx), "method", method, "path", path, "err", err)
		return apperror.Network(fmt.Errorf("read %s response: %w", method, err))
	}

	c.logger.Info("backend response",
		"req_id", obs.RequestID(ctx), "status", resp.StatusCode, "path", path)

	if resp.StatusCode >= 400 {
		// A response arrived: application-level information the user can act on.
		var d detailBody
		_ = json.Unmarshal(respBody, &d)
		return apperror.Application(strings.TrimSpace(d.Detail), &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(respBody)),
		})
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}
