package verify

import "strings"

const (
	// DefaultNameThreshold is the minimum presence ratio for name fields.
	DefaultNameThreshold = 0.5
	// DefaultIDNumberThreshold is the stricter minimum applied to ID numbers,
	// which must not tolerate loose partial overlap.
	DefaultIDNumberThreshold = 0.8
)

// Similarity computes an approximate-match confidence between two strings in
// [0,1]. Equal after normalization scores 1.0; substring containment scores
// 0.9 (OCR truncation or concatenation without claiming exact identity);
// otherwise the score is the character-presence ratio: for each character of
// the shorter string, how many occur anywhere in the longer one, divided by
// the longer string's length. Ratios below threshold collapse to 0 so a
// small-but-nonzero confidence never drives a false positive downstream.
func Similarity(a, b string, threshold float64) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.9
	}

	shorter, longer := na, nb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	hits := 0
	for i := 0; i < len(shorter); i++ {
		if strings.IndexByte(longer, shorter[i]) >= 0 {
			hits++
		}
	}
	ratio := float64(hits) / float64(len(longer))
	if ratio < threshold {
		return 0
	}
	return ratio
}
