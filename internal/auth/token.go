// Package auth holds the Slack credential and the HTTP client that presents it.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// ErrTokenNotSet indicates no Slack token was provided.
var ErrTokenNotSet = errors.New("no token defined")

// DefaultTimeout bounds each call to the Slack API.
const DefaultTimeout = 10 * time.Second

// Token is an opaque Slack bearer token. Its string forms are masked so it
// can be passed to loggers and fmt verbs without leaking.
type Token struct {
	value string
}

// NewToken wraps raw, rejecting blank input with ErrTokenNotSet.
func NewToken(raw string) (Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Token{}, ErrTokenNotSet
	}

	return Token{value: raw}, nil
}

// IsSet reports whether the token holds a value.
func (t Token) IsSet() bool {
	return t.value != ""
}

func (t Token) String() string {
	return maskLeft(t.value)
}

func (t Token) GoString() string {
	return "auth.Token{" + maskLeft(t.value) + "}"
}

// TokenSource exposes the token as a never-expiring bearer token.
func (t Token) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: t.value,
		TokenType:   "Bearer",
	})
}

// Client returns an HTTP client that sends "Authorization: Bearer <token>"
// on every request. A non-positive timeout falls back to DefaultTimeout.
func (t Token) Client(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Transport: &oauth2.Transport{
			Source: t.TokenSource(),
			Base:   http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

func maskLeft(s string) string {
	rs := []rune(s)
	for i := 0; i < len(rs)-4; i++ {
		rs[i] = 'X'
	}
	return string(rs)
}
