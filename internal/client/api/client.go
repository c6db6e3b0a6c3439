// Package api is the typed HTTP client for the CREDKarma backend. All
// outbound calls go through here: it selects the base path, attaches the
// bearer token when one is present, and decodes server error payloads.
// It performs no retries and holds no business logic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the current bearer token, or "" when unauthenticated.
type TokenSource interface {
	Token() string
}

// Client wraps outbound HTTP calls to the backend REST API.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenSource

	Auth      *AuthAPI
	Users     *UsersAPI
	Behaviors *BehaviorsAPI
	Rewards   *RewardsAPI
	Dashboard *DashboardAPI
}

// New creates a client for the API rooted at baseURL. tokens may be nil for
// a client that only makes unauthenticated calls.
func New(baseURL string, tokens TokenSource) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
	}
	c.Auth = &AuthAPI{c: c}
	c.Users = &UsersAPI{c: c}
	c.Behaviors = &BehaviorsAPI{c: c}
	c.Rewards = &RewardsAPI{c: c}
	c.Dashboard = &DashboardAPI{c: c}
	return c
}

// do performs one request. body (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded 2xx response. Non-2xx responses become a
// *ServerError carrying the backend's message verbatim.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeServerError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response of %s %s: %w", method, path, err)
		}
	}
	return nil
}
