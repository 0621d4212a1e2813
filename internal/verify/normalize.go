// Package verify implements the identity-document verification engine: given
// raw text recognized from a photographed ID and the fields an applicant
// declared, it decides whether the document plausibly supports the claimed
// identity. All components are pure functions over their inputs and safe for
// concurrent use.
package verify

// Normalize lower-cases s and strips every character that is not an ASCII
// letter or digit. Every containment and character-overlap comparison runs on
// normalized text so punctuation, spacing, and OCR artifacts never cause
// false negatives.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}
