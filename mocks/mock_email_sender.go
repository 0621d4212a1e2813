package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Theijiii/plms-sys-sub005/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendVerificationOutcome(ctx context.Context, toEmail, toName string, outcome port.VerificationOutcome) error {
	args := m.Called(ctx, toEmail, toName, outcome)
	return args.Error(0)
}
