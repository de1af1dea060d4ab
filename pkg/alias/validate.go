package alias

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// MaxNameLength is the longest accepted alias name.
const MaxNameLength = 50

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// ValidationError reports a rejected field on a submitted alias. It never
// reaches the store; callers surface it next to the offending input.
type ValidationError struct {
	Field   string // "name" or "url"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateName checks an alias name before it reaches the table.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &ValidationError{Field: "name", Message: "alias cannot be empty"}
	}
	if len(trimmed) > MaxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("alias is too long (max %d characters)", MaxNameLength)}
	}
	if !namePattern.MatchString(trimmed) {
		return &ValidationError{Field: "name", Message: "alias can only contain letters, numbers, hyphens, and underscores"}
	}
	return nil
}

// ValidateURL checks a target URL. A missing scheme is tolerated; the check
// runs against the https-prefixed form, matching how targets are entered.
func ValidateURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &ValidationError{Field: "url", Message: "URL cannot be empty"}
	}
	u, err := url.Parse(EnsureScheme(trimmed))
	if err != nil || u.Host == "" {
		return &ValidationError{Field: "url", Message: "invalid URL format"}
	}
	return nil
}

// Validate checks a complete (name, url) submission.
func Validate(name, rawURL string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return ValidateURL(rawURL)
}

// EnsureScheme prepends https:// when the URL has no http(s) scheme.
func EnsureScheme(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "https://" + trimmed
	}
	return trimmed
}
