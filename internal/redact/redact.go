// Package redact strips credentials, connection strings, tokens, file paths
// and other sensitive fragments out of strings before they are logged or
// returned in error responses.
package redact

import (
	"log/slog"
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder  = "[REDACTED]"
	StackTracePlaceholder = "[STACK_TRACE_REDACTED]"
	DSNPlaceholder        = "[REDACTED_DSN]"
	JWTPlaceholder        = "[REDACTED_JWT]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	HashPlaceholder       = "[REDACTED_HASH]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	PathPlaceholder       = "[REDACTED_PATH]"
	HostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	re          *regexp.Regexp
	replacement string
}

// rules run in order: broad, multi-part matches (stack traces, DSNs, JWTs)
// go first so later rules do not split them, and paths run before hosts so a
// file name is not mistaken for a domain.
var rules = []rule{
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), StackTracePlaceholder},
	{regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|rediss?)://\S+`), DSNPlaceholder},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), JWTPlaceholder},
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]+`), "Bearer " + TokenPlaceholder},
	{regexp.MustCompile(`\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{53}`), HashPlaceholder},
	{
		regexp.MustCompile(`(?i)\b([\w-]*(?:password|passwd|pwd|key|token|secret))['"]?(?:\s*=\s*|:)['"]?[^\s'"&,]{3,}`),
		"${1}=" + RedactionPlaceholder,
	},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), EmailPlaceholder},
	{regexp.MustCompile(`\b(?:SELECT|INSERT|UPDATE|DELETE)\b[^;\n]*\b(?:FROM|INTO|SET|WHERE)\b[^;\n]*`), SQLPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\s\\]+(?:\\[^\s\\]+)+`), PathPlaceholder},
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), PathPlaceholder},
	{regexp.MustCompile(`\b\d{1,3}(?:\.\d{1,3}){3}(?::\d{1,5})?\b`), HostPlaceholder},
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		HostPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.re.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Attr returns the redacted error as an "error" log attribute.
func Attr(err error) slog.Attr {
	return slog.String("error", Error(err))
}
