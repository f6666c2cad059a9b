package slack

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hal9000y/slack-vacation/internal/redact"
)

// TransportError means the request never produced an HTTP response:
// connection refused, timeout, TLS failure.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("slack %s: transport failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseError is a sanitized summary of a non-2xx or unparseable response.
//
// Raw bodies are never stored: Snippet is redacted and truncated.
type ResponseError struct {
	Op         string
	StatusCode int
	Status     string
	Snippet    string
	Err        error
}

func (e *ResponseError) Error() string {
	parts := []string{fmt.Sprintf("slack %s: bad response: status=%s", e.Op, e.Status)}
	if e.Err != nil {
		parts = append(parts, "err="+e.Err.Error())
	}
	if e.Snippet != "" {
		parts = append(parts, "body="+e.Snippet)
	}
	return strings.Join(parts, " ")
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// MissingProfileError is returned when a well-formed response has no profile.
// Code carries Slack's "error" field when present, e.g. "invalid_auth".
type MissingProfileError struct {
	Code string
}

func (e *MissingProfileError) Error() string {
	if e.Code == "" {
		return "slack response has no profile"
	}
	return "slack response has no profile: " + e.Code
}

func newResponseError(op string, resp *http.Response, body []byte, err error) *ResponseError {
	re := &ResponseError{
		Op:      op,
		Snippet: redactAndTruncate(body),
		Err:     err,
	}
	if resp != nil {
		re.StatusCode = resp.StatusCode
		re.Status = resp.Status
	}
	return re
}

func redactAndTruncate(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	const max = 256
	b := body
	if len(b) > max {
		b = b[:max]
	}
	s := redact.Secrets(string(b))
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(body) > max {
		return s + "..."
	}
	return s
}
