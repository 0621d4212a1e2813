package verify

import (
	"strings"
	"time"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
)

// EngineConfig holds the tunable tolerance policy. Zero values fall back to
// the documented defaults.
type EngineConfig struct {
	NameThreshold     float64
	IDNumberThreshold float64
	// Now supplies the current time for expiration checks; defaults to
	// time.Now. Injectable for tests.
	Now func() time.Time
}

// Engine is the verification orchestrator: it consumes applicant-declared
// fields plus recognized text and produces a single structured report.
// Stateless and safe for any number of concurrent attempts.
type Engine struct {
	categories        *CategoryTable
	dates             *DateExtractor
	expiry            *ExpiryEvaluator
	nameThreshold     float64
	idNumberThreshold float64
	now               func() time.Time
}

// NewEngine creates an Engine over the given reference tables.
func NewEngine(months *MonthTable, categories *CategoryTable, cfg EngineConfig) *Engine {
	if cfg.NameThreshold == 0 {
		cfg.NameThreshold = DefaultNameThreshold
	}
	if cfg.IDNumberThreshold == 0 {
		cfg.IDNumberThreshold = DefaultIDNumberThreshold
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	dates := NewDateExtractor(months)
	return &Engine{
		categories:        categories,
		dates:             dates,
		expiry:            NewExpiryEvaluator(dates),
		nameThreshold:     cfg.NameThreshold,
		idNumberThreshold: cfg.IDNumberThreshold,
		now:               cfg.Now,
	}
}

// Dates exposes the engine's date extractor for callers that cross-check
// document dates themselves.
func (e *Engine) Dates() *DateExtractor { return e.dates }

// CheckPreconditions reports the first missing required declared field.
// Useful for rejecting a submission before any expensive work starts.
func (e *Engine) CheckPreconditions(declared DeclaredIdentity) error {
	switch {
	case strings.TrimSpace(declared.FirstName) == "":
		return domain.NewPreconditionError("firstName")
	case strings.TrimSpace(declared.LastName) == "":
		return domain.NewPreconditionError("lastName")
	case strings.TrimSpace(declared.IDNumber) == "":
		return domain.NewPreconditionError("idNumber")
	case strings.TrimSpace(declared.IDType) == "":
		return domain.NewPreconditionError("idType")
	}
	return nil
}

// Verify checks the declared identity against the recognized text and
// assembles a fresh report. It fails fast with a precondition error, not a
// report, when a required declared field or the text itself is missing; those
// are caller configuration errors, not document-quality findings.
func (e *Engine) Verify(declared DeclaredIdentity, text string) (*VerificationReport, error) {
	if err := e.CheckPreconditions(declared); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewPreconditionError("recognizedText")
	}

	report := &VerificationReport{
		FirstName: e.matchName(declared.FirstName, text),
		LastName:  e.matchName(declared.LastName, text),
		IDNumber:  e.matchIDNumber(declared.IDNumber, text),
		RawText:   text,
	}

	if strings.TrimSpace(declared.MiddleName) != "" {
		m := e.matchMiddleName(declared.MiddleName, text)
		report.MiddleName = &m
	}

	if declared.Birthdate != nil {
		report.Birthdate = &BirthdateMatch{
			Matched: dateOccursIn(*declared.Birthdate, text),
			Value:   *declared.Birthdate,
		}
	}

	report.IDType = DocumentTypeFinding{
		DetectedType: "Unknown",
		SelectedType: declared.IDType,
	}
	if cand := e.categories.Classify(text); cand != nil {
		report.IDType.DetectedType = cand.Label
		report.IDType.Confidence = cand.Confidence
		report.IDType.Matched = cand.Label == declared.IDType
	}

	report.Expiration = e.expiry.Evaluate(text, e.now())

	return report, nil
}

func (e *Engine) matchName(value, text string) FieldMatch {
	conf := Similarity(value, text, e.nameThreshold)
	return FieldMatch{Matched: conf > 0, Confidence: conf, Value: value}
}

// matchMiddleName accepts either a full similarity match or the single
// initial character occurring anywhere in the normalized text, since
// documents commonly abbreviate the middle name to an initial.
func (e *Engine) matchMiddleName(value, text string) FieldMatch {
	conf := Similarity(value, text, e.nameThreshold)
	matched := conf > 0
	if !matched {
		initial := Normalize(value)
		if initial != "" && strings.Contains(Normalize(text), initial[:1]) {
			matched = true
		}
	}
	return FieldMatch{Matched: matched, Confidence: conf, Value: value}
}

// matchIDNumber applies the strict ID-number rule: normalized or raw
// substring containment, or a similarity score above the strict threshold.
func (e *Engine) matchIDNumber(value, text string) FieldMatch {
	normalized := Normalize(value)
	if normalized != "" && strings.Contains(Normalize(text), normalized) {
		return FieldMatch{Matched: true, Confidence: 1.0, Value: value}
	}
	if strings.Contains(strings.ToLower(text), strings.ToLower(value)) {
		return FieldMatch{Matched: true, Confidence: 1.0, Value: value}
	}
	conf := Similarity(value, text, e.idNumberThreshold)
	return FieldMatch{Matched: conf > e.idNumberThreshold, Confidence: conf, Value: value}
}
