package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

// Redactor removes credentials from log output.
type Redactor struct {
	patterns []redactPattern
}

// redactPattern contains a compiled regex and replacement string.
type redactPattern struct {
	regex       *regexp.Regexp
	replacement string
}

// sensitiveKeys are matched as substrings of lower-cased attribute keys.
var sensitiveKeys = []string{
	"api_key", "apikey",
	"authorization",
	"password", "secret", "token",
}

// NewRedactor creates a Redactor with the built-in credential patterns.
func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []redactPattern{
			{
				regex:       regexp.MustCompile(`Bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
				replacement: "Bearer ***",
			},
			{
				regex:       regexp.MustCompile(`sk-[a-zA-Z0-9_\-]{8,}`),
				replacement: "sk-***",
			},
		},
	}
}

// ReplaceAttr is a slog.HandlerOptions.ReplaceAttr hook. Values of
// sensitive keys are masked and credential-shaped substrings in other
// string values are replaced.
func (r *Redactor) ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		return a
	}

	if isSensitiveKey(a.Key) && !isTokenCount(a.Key) {
		return slog.String(a.Key, RedactAPIKey(a.Value.String()))
	}

	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); s != "" {
			if redacted := r.RedactString(s); redacted != s {
				return slog.String(a.Key, redacted)
			}
		}
	}

	return a
}

// RedactString replaces credential-shaped substrings in value.
func (r *Redactor) RedactString(value string) string {
	for _, p := range r.patterns {
		value = p.regex.ReplaceAllString(value, p.replacement)
	}
	return value
}

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}
	return false
}

// isTokenCount exempts usage counters such as prompt_tokens.
func isTokenCount(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), "_tokens") || strings.ToLower(key) == "tokens"
}

// RedactAPIKey redacts an API key, keeping only a prefix.
func RedactAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 4 {
		return "***"
	}

	return apiKey[:4] + "***"
}
