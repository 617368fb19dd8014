// Package api implements the HTTP client for the finance backend, including
// the read cache that short-circuits repeated GETs within the TTL and is
// cleared on every successful mutation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/tdeshpande/finly/internal/common"
)

// CredentialStore persists the bearer credential between invocations.
// The session package provides the SQLite-backed implementation.
type CredentialStore interface {
	Token() (*oauth2.Token, error)
	SaveToken(tok *oauth2.Token) error
	ClearToken() error
}

// Config holds client configuration.
type Config struct {
	// BaseURL is the backend API root, e.g. https://api.example.com/api
	BaseURL string
	// Timeout is the transport timeout. Generous by default to tolerate a
	// cold-starting backend.
	Timeout time.Duration
	// CacheTTL bounds how stale a served read may be.
	CacheTTL time.Duration
}

// Client talks to the finance backend. Reads go through the request cache;
// writes invalidate it before returning, so a write followed by a read from
// the same client always observes post-write state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *requestCache
	creds      CredentialStore
}

// NewClient creates a client for the backend at cfg.BaseURL. creds may be
// nil for unauthenticated use (e.g. before first login).
func NewClient(cfg Config, creds CredentialStore) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: api base URL is required", common.ErrMissingConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache: newRequestCache(cfg.CacheTTL),
		creds: creds,
	}, nil
}

// CacheSize reports how many responses are currently cached.
func (c *Client) CacheSize() int {
	return c.cache.size()
}

// InvalidateCache drops every cached response.
func (c *Client) InvalidateCache() {
	c.cache.invalidateAll()
}

// get serves a GET from the cache when fresh, otherwise hits the network and
// stores the successful response. Cache hits never touch the transport.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	key := cacheKey(path, query)

	if payload, ok := c.cache.get(key); ok {
		slog.Debug("Serving response from cache", "key", key)
		if out == nil {
			return nil
		}
		return json.Unmarshal(payload, out)
	}

	// Reads are idempotent, so transient failures get a couple of retries.
	// Mutations never do.
	var body []byte
	err := common.WithRetry(ctx, func() error {
		var doErr error
		body, doErr = c.do(ctx, http.MethodGet, path, query, nil, true)
		return doErr
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: 50 * time.Millisecond, MaxDelay: time.Second})
	if err != nil {
		return err
	}

	c.cache.put(key, body)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mutate performs a write and, on success, clears the cache before
// returning so the next read cannot observe pre-mutation state.
func (c *Client) mutate(ctx context.Context, method, path string, payload, out any) error {
	body, err := c.do(ctx, method, path, nil, payload, true)
	if err != nil {
		return err
	}

	c.cache.invalidateAll()

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// do performs a single HTTP request. When handleAuth is set, a 401 discards
// the stored credential and clears the cache before surfacing
// common.ErrAuthRequired; the login flow passes false to avoid that loop.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, handleAuth bool) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.creds != nil {
		if tok, err := c.creds.Token(); err == nil && tok.AccessToken != "" {
			req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		}
	}

	slog.Debug("Requesting backend resource",
		"method", method,
		"path", path,
		"request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &common.RetryableError{Err: fmt.Errorf("request failed: %w", err), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if handleAuth {
			c.handleAuthFailure()
		}
		return nil, fmt.Errorf("%w: backend rejected credentials", common.ErrAuthRequired)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, path)
	case resp.StatusCode >= 500:
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("backend error: %d - %s", resp.StatusCode, apiErrorMessage(body)),
			Retryable: true,
		}
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("backend error: %d - %s", resp.StatusCode, apiErrorMessage(body))
	}

	return body, nil
}

// handleAuthFailure discards the stored credential and cached reads so the
// next command starts from a clean unauthenticated state.
func (c *Client) handleAuthFailure() {
	slog.Debug("Credential rejected, clearing session state")
	if c.creds != nil {
		if err := c.creds.ClearToken(); err != nil {
			common.LogError(err, "Failed to clear rejected credentials", nil)
		}
	}
	c.cache.invalidateAll()
}

// apiErrorMessage extracts a human-readable message from an error body.
func apiErrorMessage(body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"error", "detail", "message"} {
			if msg, ok := fields[key].(string); ok && msg != "" {
				return msg
			}
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "no error detail"
	}
	return msg
}
