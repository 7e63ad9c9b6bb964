// Package validate holds the boundary checks and sanitizers shared by the
// HTTP handlers.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxContactName    = 100
	MaxContactEmail   = 100
	MaxContactMessage = 2000
	// MaxSanitized bounds free-text fields that have no tighter limit.
	MaxSanitized = 1000
	// MinPasswordLength applies to password changes and seeded accounts.
	MinPasswordLength = 8
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	htmlAngles   = strings.NewReplacer("<", "", ">", "")
	phoneStrip   = regexp.MustCompile(`[^0-9+\-\s()]`)
)

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UUID reports whether s is a canonical 36-character UUID.
func UUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Sanitize trims s, removes angle brackets and truncates the result to limit
// runes. A non-positive limit means MaxSanitized.
func Sanitize(s string, limit int) string {
	if limit <= 0 {
		limit = MaxSanitized
	}
	s = htmlAngles.Replace(strings.TrimSpace(s))
	return truncate(s, limit)
}

// Phone sanitizes s and keeps only digits, "+", "-", whitespace and
// parentheses.
func Phone(s string) string {
	return phoneStrip.ReplaceAllString(Sanitize(s, MaxSanitized), "")
}

// TooLong reports whether s has more than limit runes.
func TooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
