package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/service"
)

// MockVerificationService is a mock implementation of service.VerificationService.
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Submit(ctx context.Context, input service.SubmitInput) (*service.SubmitOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitOutput), args.Error(1)
}

func (m *MockVerificationService) GetByID(ctx context.Context, callerID uuid.UUID, callerRole domain.UserRole, attemptID uuid.UUID) (*domain.VerificationAttempt, error) {
	args := m.Called(ctx, callerID, callerRole, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationAttempt), args.Error(1)
}

func (m *MockVerificationService) ListByApplicant(ctx context.Context, applicantID uuid.UUID, offset, limit int) ([]domain.VerificationAttempt, int, error) {
	args := m.Called(ctx, applicantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.VerificationAttempt), args.Int(1), args.Error(2)
}

func (m *MockVerificationService) List(ctx context.Context, offset, limit int) ([]domain.VerificationAttempt, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.VerificationAttempt), args.Int(1), args.Error(2)
}

func (m *MockVerificationService) ExportCSV(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
