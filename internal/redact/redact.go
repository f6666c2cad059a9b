// Package redact scrubs credentials out of strings before they are printed.
package redact

import (
	"regexp"
	"strings"
)

var (
	bearerTokenRe = regexp.MustCompile(`(?i)\bBearer\s+[^\s"']+`)

	// Slack bot, user, app and refresh tokens.
	slackTokenRe = regexp.MustCompile(`\bxox[abeprs]-[A-Za-z0-9-]+`)
)

// Secrets removes obvious secret-bearing substrings from error/log strings.
func Secrets(s string) string {
	if s == "" {
		return ""
	}
	out := s
	out = bearerTokenRe.ReplaceAllString(out, "Bearer <redacted>")
	out = slackTokenRe.ReplaceAllString(out, "<redacted>")
	return strings.TrimSpace(out)
}
