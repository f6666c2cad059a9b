// Package slack reads and writes the display name through the users.profile API.
package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultGetURL = "https://slack.com/api/users.profile.get"
	DefaultSetURL = "https://slack.com/api/users.profile.set"

	contentTypeForm = "application/x-www-form-urlencoded"
)

// Config holds the profile endpoints. Empty fields fall back to the Slack defaults.
type Config struct {
	GetURL string
	SetURL string
}

// Profile is the subset of users.profile fields Slack returns that we decode.
type Profile struct {
	Email            string `json:"email"`
	DisplayName      string `json:"display_name"`
	StatusEmoji      string `json:"status_emoji"`
	StatusExpiration int64  `json:"status_expiration"`
}

type profileResponse struct {
	OK      bool     `json:"ok"`
	Error   string   `json:"error,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
}

// Client talks to the profile endpoints. The http.Client is expected to
// authenticate requests, see auth.Token.Client.
type Client struct {
	getURL *url.URL
	setURL *url.URL
	http   *http.Client
}

// NewClient validates the endpoints in cfg and returns a Client using hc.
func NewClient(cfg Config, hc *http.Client) (*Client, error) {
	if hc == nil {
		return nil, fmt.Errorf("http client is required")
	}

	getURL, err := parseEndpoint(cfg.GetURL, DefaultGetURL, "profile get")
	if err != nil {
		return nil, err
	}
	setURL, err := parseEndpoint(cfg.SetURL, DefaultSetURL, "profile set")
	if err != nil {
		return nil, err
	}

	return &Client{
		getURL: getURL,
		setURL: setURL,
		http:   hc,
	}, nil
}

func parseEndpoint(raw, fallback, name string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s URL: %w", name, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s URL must include scheme and host (got %q)", name, raw)
	}
	return u, nil
}

// Profile fetches the caller's profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	const op = "users.profile.get"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.getURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext failed: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeForm)

	resp, body, err := c.do(op, req)
	if err != nil {
		return nil, err
	}

	var out profileResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, newResponseError(op, resp, body, fmt.Errorf("json.Unmarshal failed: %w", err))
	}
	if out.Profile == nil {
		return nil, &MissingProfileError{Code: out.Error}
	}

	return out.Profile, nil
}

// DisplayName returns the caller's current display name.
func (c *Client) DisplayName(ctx context.Context) (string, error) {
	p, err := c.Profile(ctx)
	if err != nil {
		return "", err
	}

	return p.DisplayName, nil
}

// SetDisplayName overwrites the caller's display name. The response body is
// not verified beyond the HTTP status; a Slack-level failure is only logged.
func (c *Client) SetDisplayName(ctx context.Context, name string) error {
	const op = "users.profile.set"

	u := *c.setURL
	q := u.Query()
	q.Set("name", "display_name")
	q.Set("value", name)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext failed: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeForm)

	_, body, err := c.do(op, req)
	if err != nil {
		return err
	}

	var out profileResponse
	if json.Unmarshal(body, &out) == nil && !out.OK {
		log.Printf("Slack %s did not confirm the update: %s", op, out.Error)
	}

	return nil
}

func (c *Client) do(op string, req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &TransportError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &TransportError{Op: op, Err: fmt.Errorf("io.ReadAll failed: %w", err)}
	}
	if resp.StatusCode/100 != 2 {
		return nil, nil, newResponseError(op, resp, body, nil)
	}

	return resp, body, nil
}
