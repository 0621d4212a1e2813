package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
)

// MockCategoryRepo is a mock implementation of port.CategoryRepository.
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) LoadAll(ctx context.Context) ([]domain.DocumentCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentCategory), args.Error(1)
}

func (m *MockCategoryRepo) ReplaceAll(ctx context.Context, categories []domain.DocumentCategory) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}
