// Package redact strips sensitive values from strings before they reach
// logs. Error messages in this service can carry database DSNs, raw SQL,
// bearer tokens, passwords, and user email addresses; none of those may
// appear in log output.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
)

// Precompiled patterns, applied in order. The JWT pattern runs before the
// generic credential pattern so tokens get the more specific placeholder.
var replacements = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	// Database connection strings with inline credentials
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), RedactedCredentialPlaceholder},

	// Three-part base64url JWT tokens
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},

	// password=..., password: '...', pwd=...
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},

	// secrets and bearer tokens in key=value form
	{regexp.MustCompile(`(?i)(jwt[_-]?secret|token|secret|bearer)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedCredentialPlaceholder},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},

	// SQL statements leaked from driver errors
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()$]+(?:FROM|INTO|SET)(?:[\s\w,*()='"$]+)?`), RedactedSQLPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range replacements {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
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
