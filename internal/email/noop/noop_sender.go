package noop

import (
	"context"
	"log"
	"strings"

	"github.com/Theijiii/plms-sys-sub005/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs outcomes to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendVerificationOutcome(_ context.Context, toEmail, toName string, outcome port.VerificationOutcome) error {
	if outcome.Valid {
		log.Printf("[NOOP EMAIL] %s (%s): %s verified", toName, toEmail, outcome.IDType)
		return nil
	}
	log.Printf("[NOOP EMAIL] %s (%s): %s rejected: %s",
		toName, toEmail, outcome.IDType, strings.Join(outcome.Reasons, "; "))
	return nil
}
