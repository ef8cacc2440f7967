package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CollapseWhitespace trims the string and squeezes internal whitespace runs
// to single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanName normalizes a person or topic name for display: whitespace is
// collapsed and all-lowercase or ALL-CAPS values are re-cased to title form.
// Mixed-case values are left alone so "McAllister" survives.
func CleanName(s string) string {
	collapsed := CollapseWhitespace(s)
	if collapsed == "" {
		return ""
	}
	lower := strings.ToLower(collapsed)
	upper := strings.ToUpper(collapsed)
	if collapsed == lower || collapsed == upper {
		return titleCaser.String(lower)
	}
	return collapsed
}

// Snippet truncates s to at most max runes, appending an ellipsis when
// anything was cut. Whitespace is collapsed first.
func Snippet(s string, max int) string {
	collapsed := CollapseWhitespace(s)
	if max <= 0 {
		return collapsed
	}
	runes := []rune(collapsed)
	if len(runes) <= max {
		return collapsed
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
