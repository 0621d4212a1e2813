package verify

import (
	"strings"
	"time"
)

// birthdateLayouts enumerates the surface forms a known calendar date may
// take on a document: numeric day-first, month-first, and year-first in both
// separators, padded and unpadded, plus long and short month-name renderings
// with and without the comma.
var birthdateLayouts = []string{
	"02/01/2006", "2/1/2006",
	"01/02/2006", "1/2/2006",
	"2006/01/02",
	"02-01-2006", "2-1-2006",
	"01-02-2006", "1-2-2006",
	"2006-01-02",
	"January 2, 2006", "January 2 2006", "2 January 2006",
	"Jan 2, 2006", "Jan 2 2006", "2 Jan 2006",
}

// RenderDate returns every plausible rendering of a known date. The declared
// birthdate is known exactly and only its surface form varies, so checking
// renderings verbatim beats re-parsing noisy document dates.
func RenderDate(t time.Time) []string {
	seen := make(map[string]bool, len(birthdateLayouts))
	out := make([]string, 0, len(birthdateLayouts))
	for _, layout := range birthdateLayouts {
		r := t.Format(layout)
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// dateOccursIn reports whether any rendering of t occurs verbatim in the raw
// or lower-cased text.
func dateOccursIn(t time.Time, text string) bool {
	lower := strings.ToLower(text)
	for _, r := range RenderDate(t) {
		if strings.Contains(text, r) || strings.Contains(lower, strings.ToLower(r)) {
			return true
		}
	}
	return false
}
