package port

import "context"

// RecognizeInput carries one uploaded document image to the OCR collaborator.
type RecognizeInput struct {
	Bytes       []byte
	ContentType string
	// Progress, when non-nil, receives recognition progress as 0-100.
	Progress func(percent int)
}

// RecognizeOutput is whatever text the OCR collaborator produced. Treated as
// untrusted: possibly empty, possibly full of transliteration noise.
type RecognizeOutput struct {
	Text string
}

// TextRecognizer abstracts the optical character recognition collaborator.
// Implementations must surface failures as domain.ErrRecognitionFailed so a
// bad image is never confused with a non-matching document.
type TextRecognizer interface {
	Recognize(ctx context.Context, input RecognizeInput) (*RecognizeOutput, error)
}
