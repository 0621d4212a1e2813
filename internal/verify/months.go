package verify

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// MonthVariant lists the accepted spellings for one calendar month, covering
// English full and abbreviated forms plus Filipino/Spanish-derived
// equivalents.
type MonthVariant struct {
	Month    time.Month `json:"month"`
	Variants []string   `json:"variants"`
}

// MonthTable resolves bilingual month-name variants to canonical months.
// Immutable after construction and safe for concurrent access.
type MonthTable struct {
	// byVariant is ordered longest-variant-first so that containment checks
	// prefer the most specific spelling.
	byVariant []monthEntry
}

type monthEntry struct {
	variant string // lower-cased
	month   time.Month
}

// NewMonthTable builds a MonthTable from variant entries. Empty variants are
// dropped; matching is case-insensitive.
func NewMonthTable(entries []MonthVariant) *MonthTable {
	t := &MonthTable{}
	for _, e := range entries {
		for _, v := range e.Variants {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "" {
				continue
			}
			t.byVariant = append(t.byVariant, monthEntry{variant: v, month: e.Month})
		}
	}
	sort.SliceStable(t.byVariant, func(i, j int) bool {
		return len(t.byVariant[i].variant) > len(t.byVariant[j].variant)
	})
	return t
}

// Resolve maps a token to its canonical month. A token matches when it equals
// or contains a known variant, case-insensitively. The second return is false
// when no variant matches.
func (t *MonthTable) Resolve(token string) (time.Month, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}
	for _, e := range t.byVariant {
		if token == e.variant || strings.Contains(token, e.variant) {
			return e.month, true
		}
	}
	return 0, false
}

// alternation returns a regex alternation of every variant, longest first, so
// that "september" wins over "sep" inside a single match.
func (t *MonthTable) alternation() string {
	parts := make([]string, 0, len(t.byVariant))
	for _, e := range t.byVariant {
		parts = append(parts, regexp.QuoteMeta(e.variant))
	}
	return strings.Join(parts, "|")
}
