// Package redact scrubs obvious secret-bearing substrings from strings
// destined for logs or terminal output.
package redact

import (
	"regexp"
	"strings"
)

var (
	// Common key=value formats that sometimes leak in error strings.
	credentialKVRe = regexp.MustCompile(`(?i)\b(secret[_-]?access[_-]?key|access[_-]?key[_-]?id|session[_-]?token|api[_-]?key)\b\s*[:=]\s*[^\s"']+`)

	// AWS authorization headers occasionally surface in SDK error text.
	sigV4Re = regexp.MustCompile(`\bAWS4-HMAC-SHA256\s+Credential=[^\s,]+`)
)

// Secrets removes obvious secret-bearing substrings from error/log strings.
//
// It is intentionally conservative: safe to call on any message, including
// user-provided inputs and upstream error strings.
func Secrets(s string) string {
	if s == "" {
		return ""
	}
	out := s
	out = credentialKVRe.ReplaceAllString(out, "<redacted_kv>")
	out = sigV4Re.ReplaceAllString(out, "AWS4-HMAC-SHA256 Credential=<redacted>")
	return strings.TrimSpace(out)
}
