// Place for pure domain logic: nothing here depends on Gin or GORM, so it is shared by
// the server and the Go client and is easy to unit test.
package core

import "strings"

// NormalizeName trims whitespace and upper-cases the first letter for display.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s) // Remove leading/trailing whitespace (clean user input).
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NormalizeEmail trims and lower-cases an address so uniqueness checks are case-insensitive.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
