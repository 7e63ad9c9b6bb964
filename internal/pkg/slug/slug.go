// Package slug derives URL slugs from display names.
package slug

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`[\s\p{Zs}]+`)
	nonWord    = regexp.MustCompile(`[^A-Za-z0-9_-]`)
)

// Make lowercases name, turns each whitespace run into a single "-" and drops
// every character that is not an ASCII word character or "-".
func Make(name string) string {
	s := strings.ToLower(name)
	s = whitespace.ReplaceAllString(s, "-")
	return nonWord.ReplaceAllString(s, "")
}
