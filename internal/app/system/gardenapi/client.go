// Package gardenapi is the HTTP client for the Garden REST API.
//
// All calls take a context and return typed results. A non-2xx response is
// reported as *APIError; transport failures are wrapped with %w.
//
// The Garden deployment may run a separate admin server. DetectAdmin checks
// it once at startup; admin-only reads go there when it answered and fall
// back to the primary server otherwise.
package gardenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/system/apimetrics"
	"github.com/dalemusser/gardenadmin/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader is set on every outgoing request.
const RequestIDHeader = "X-Request-ID"

// Config configures a Client.
type Config struct {
	// BaseURL is the primary Garden server, e.g. http://garden.local:5000.
	BaseURL string
	// AdminURL is the optional admin server, e.g. http://garden.local:5001.
	AdminURL string

	HTTPClient *http.Client
	Logger     *zap.Logger
	Metrics    *apimetrics.Recorder
}

// Client calls the Garden REST API.
type Client struct {
	baseURL  string
	adminURL string
	http     *http.Client
	log      *zap.Logger
	metrics  *apimetrics.Recorder

	mu      sync.RWMutex
	adminUp bool
}

// New creates a Client. Trailing slashes on the URLs are ignored.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeouts.Report()}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		adminURL: strings.TrimRight(cfg.AdminURL, "/"),
		http:     hc,
		log:      log,
		metrics:  cfg.Metrics,
	}
}

// BaseURL returns the primary server URL.
func (c *Client) BaseURL() string { return c.baseURL }

// AdminBase returns the URL used for admin-only reads: the admin server when
// the last check succeeded, the primary server otherwise.
func (c *Client) AdminBase() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.adminUp {
		return c.adminURL
	}
	return c.baseURL
}

// DetectAdmin checks the admin server's /health with the health timeout and
// records the result. It reports whether the admin server will be used.
func (c *Client) DetectAdmin(ctx context.Context) bool {
	up := false
	if c.adminURL != "" && c.adminURL != c.baseURL {
		ctx, cancel := context.WithTimeout(ctx, timeouts.Health())
		defer cancel()
		if err := c.healthAt(ctx, c.adminURL); err == nil {
			up = true
		} else {
			c.log.Info("admin server unavailable, using primary",
				zap.String("admin_url", c.adminURL),
				zap.Error(err))
		}
	}

	c.mu.Lock()
	c.adminUp = up
	c.mu.Unlock()

	if up {
		c.log.Info("using admin server", zap.String("admin_url", c.adminURL))
	}
	return up
}

// Health checks the primary server's /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.healthAt(ctx, c.baseURL)
}

func (c *Client) healthAt(ctx context.Context, base string) error {
	resp, err := c.send(ctx, http.MethodGet, base, "/health", nil, nil, "health")
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// getJSON issues a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, base, path string, query url.Values, out any, endpoint string) error {
	return c.doJSON(ctx, http.MethodGet, base, path, query, nil, out, endpoint)
}

// postJSON issues a POST with a JSON body and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any, endpoint string) error {
	return c.doJSON(ctx, http.MethodPost, c.baseURL, path, nil, body, out, endpoint)
}

func (c *Client) doJSON(ctx context.Context, method, base, path string, query url.Values, body, out any, endpoint string) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("garden api %s: encode request: %w", endpoint, err)
		}
		payload = bytes.NewReader(b)
	}

	resp, err := c.send(ctx, method, base, path, query, payload, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("garden api %s: decode response: %w", endpoint, err)
	}
	return nil
}

// send performs the request and returns the response for 2xx statuses.
// The caller owns resp.Body. Non-2xx statuses are converted to *APIError.
func (c *Client) send(ctx context.Context, method, base, path string, query url.Values, body io.Reader, endpoint string) (*http.Response, error) {
	u := base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("garden api %s: build request: %w", endpoint, err)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.ObserveRequest(endpoint, apimetrics.OutcomeNetworkFail, elapsed)
		c.log.Warn("garden api request failed",
			zap.String("endpoint", endpoint),
			zap.String("method", method),
			zap.String("request_id", reqID),
			zap.Error(err))
		return nil, fmt.Errorf("garden api %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()
		c.metrics.ObserveRequest(endpoint, apimetrics.OutcomeHTTPError, elapsed)
		apiErr := newAPIError(endpoint, resp.StatusCode, b)
		c.log.Warn("garden api returned error status",
			zap.String("endpoint", endpoint),
			zap.String("method", method),
			zap.String("request_id", reqID),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return nil, apiErr
	}

	c.metrics.ObserveRequest(endpoint, apimetrics.OutcomeOK, elapsed)
	c.log.Debug("garden api request",
		zap.String("endpoint", endpoint),
		zap.String("request_id", reqID),
		zap.Duration("elapsed", elapsed))
	return resp, nil
}
