package verify

import (
	"fmt"
	"time"
)

// DeclaredIdentity carries the fields an applicant typed into the form,
// trusted only as a claim to be checked against the document. Immutable for
// the duration of one verification attempt.
type DeclaredIdentity struct {
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	MiddleName string     `json:"middle_name,omitempty"`
	IDNumber   string     `json:"id_number"`
	Birthdate  *time.Time `json:"birthdate,omitempty"`
	IDType     string     `json:"id_type"`
}

// FieldMatch is the outcome of checking one declared field against the
// recognized text.
type FieldMatch struct {
	Matched    bool    `json:"matched"`
	Confidence float64 `json:"confidence"`
	Value      string  `json:"value"`
}

// BirthdateMatch is the outcome of the birthdate rendering check.
type BirthdateMatch struct {
	Matched bool      `json:"matched"`
	Value   time.Time `json:"value"`
}

// DocumentTypeFinding is the classifier outcome: the best-scoring category
// against the one the applicant selected.
type DocumentTypeFinding struct {
	DetectedType string  `json:"detected_type"`
	SelectedType string  `json:"selected_type"`
	Matched      bool    `json:"matched"`
	Confidence   float64 `json:"confidence"`
}

// VerificationReport is the structured, per-field outcome of one verification
// attempt. It is created fresh on every attempt and never merged with a prior
// one; overall validity is always recomputed via Valid, never stored.
type VerificationReport struct {
	FirstName  FieldMatch          `json:"first_name"`
	LastName   FieldMatch          `json:"last_name"`
	MiddleName *FieldMatch         `json:"middle_name,omitempty"`
	IDNumber   FieldMatch          `json:"id_number"`
	Birthdate  *BirthdateMatch     `json:"birthdate,omitempty"`
	IDType     DocumentTypeFinding `json:"id_type"`
	Expiration ExpirationFinding   `json:"expiration"`
	RawText    string              `json:"raw_text"`
}

// Valid recomputes overall validity from the per-field findings: every
// required field matched, optional fields matched when present, and the
// document is not expired.
func (r *VerificationReport) Valid() bool {
	return r.FirstName.Matched &&
		r.LastName.Matched &&
		r.IDNumber.Matched &&
		r.IDType.Matched &&
		(r.MiddleName == nil || r.MiddleName.Matched) &&
		(r.Birthdate == nil || r.Birthdate.Matched) &&
		!r.Expiration.IsExpired
}

// Reasons returns the ordered, human-readable failure reasons: expiration
// first, type mismatch second, then field failures. Empty for a valid report.
func (r *VerificationReport) Reasons() []string {
	var reasons []string
	if r.Expiration.IsExpired {
		msg := "the identity document is expired"
		if r.Expiration.Date != nil {
			msg = fmt.Sprintf("the identity document expired on %s", r.Expiration.Date.Format("January 2, 2006"))
		}
		reasons = append(reasons, msg)
	}
	if !r.IDType.Matched {
		reasons = append(reasons, fmt.Sprintf(
			"document type mismatch: you selected %q but the document appears to be %q",
			r.IDType.SelectedType, r.IDType.DetectedType))
	}
	if !r.FirstName.Matched {
		reasons = append(reasons, fmt.Sprintf("first name %q was not found on the document", r.FirstName.Value))
	}
	if !r.LastName.Matched {
		reasons = append(reasons, fmt.Sprintf("last name %q was not found on the document", r.LastName.Value))
	}
	if r.MiddleName != nil && !r.MiddleName.Matched {
		reasons = append(reasons, fmt.Sprintf("middle name %q was not found on the document", r.MiddleName.Value))
	}
	if !r.IDNumber.Matched {
		reasons = append(reasons, fmt.Sprintf("ID number %q was not found on the document", r.IDNumber.Value))
	}
	if r.Birthdate != nil && !r.Birthdate.Matched {
		reasons = append(reasons, "the declared birthdate was not found on the document")
	}
	return reasons
}
