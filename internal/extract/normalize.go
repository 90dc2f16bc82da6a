// Package extract pulls structured fields out of parsed documents using
// ordered heuristics. All functions are pure over a goquery document so
// they can be tested without network access.
package extract

import (
	"regexp"
	"strings"
)

var jerseyPrefix = regexp.MustCompile(`^#\d+\s*`)

// CleanValue normalizes a raw numeric cell to a safe representation.
// Minute markers and thousands separators are stripped, placeholder
// values collapse to "0", and slash-ratios (e.g. goalkeeper card columns
// like "3/1/0") pass through verbatim. The result is always non-empty and
// never an error: malformed input coerces to the "0" sentinel.
func CleanValue(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.ReplaceAll(v, "'", "")
	v = strings.ReplaceAll(v, ".", "")
	switch v {
	case "-", "", "None":
		return "0"
	}
	if strings.Contains(v, "/") {
		return v
	}
	if !isDigits(strings.ReplaceAll(v, "-", "")) {
		return "0"
	}
	return v
}

// CleanString normalizes free text for the row format: strips a leading
// jersey-number prefix ("#10 "), trims whitespace, doubles internal
// quotes, and wraps the result in quotes so it round-trips through the
// comma-separated sinks unambiguously.
func CleanString(raw string) string {
	v := jerseyPrefix.ReplaceAllString(raw, "")
	v = strings.TrimSpace(v)
	v = strings.ReplaceAll(v, `"`, `""`)
	return `"` + v + `"`
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
