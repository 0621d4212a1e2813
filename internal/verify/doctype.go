package verify

import "strings"

// Category pairs a document-category label with the keyword set distinctive
// of it (agency names, document titles).
type Category struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// TypeCandidate is the classifier's best guess for a document category.
type TypeCandidate struct {
	Label      string
	Hits       int
	Confidence float64
}

// CategoryTable scores recognized text against the keyword sets of all known
// identity-document categories. This is a deliberate bag-of-keywords
// classifier: the categories are a small closed set with highly distinctive
// vocabulary. Immutable after construction and safe for concurrent access.
type CategoryTable struct {
	categories []Category // keywords lower-cased
}

// NewCategoryTable builds a CategoryTable. Keywords are lower-cased; entries
// without keywords are dropped.
func NewCategoryTable(categories []Category) *CategoryTable {
	t := &CategoryTable{categories: make([]Category, 0, len(categories))}
	for _, c := range categories {
		kws := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		if c.Label == "" || len(kws) == 0 {
			continue
		}
		t.categories = append(t.categories, Category{Label: c.Label, Keywords: kws})
	}
	return t
}

// Labels returns the category labels in table order.
func (t *CategoryTable) Labels() []string {
	out := make([]string, len(t.categories))
	for i, c := range t.categories {
		out[i] = c.Label
	}
	return out
}

// Classify counts case-insensitive keyword hits per category and returns the
// top candidate, ranked by raw hit count, then hit/keyword-set-size ratio.
// Remaining ties keep table order, so classification is deterministic for a
// fixed table. Returns nil when no category scores above zero.
func (t *CategoryTable) Classify(text string) *TypeCandidate {
	lower := strings.ToLower(text)

	var best *TypeCandidate
	for _, c := range t.categories {
		hits := 0
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		ratio := float64(hits) / float64(len(c.Keywords))
		if best == nil || hits > best.Hits || (hits == best.Hits && ratio > best.Confidence) {
			best = &TypeCandidate{Label: c.Label, Hits: hits, Confidence: ratio}
		}
	}
	return best
}
