package port

import "context"

// VerificationOutcome summarizes one completed attempt for notification.
type VerificationOutcome struct {
	Valid   bool
	IDType  string
	Reasons []string
}

// EmailSender defines the contract for notifying an applicant of their
// verification outcome.
type EmailSender interface {
	SendVerificationOutcome(ctx context.Context, toEmail, toName string, outcome VerificationOutcome) error
}
