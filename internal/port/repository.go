package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
)

// AttemptRepository defines the contract for verification attempt
// persistence.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *domain.VerificationAttempt) error
	GetByID(ctx context.Context, attemptID uuid.UUID) (*domain.VerificationAttempt, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, offset, limit int) ([]domain.VerificationAttempt, int, error)
	List(ctx context.Context, offset, limit int) ([]domain.VerificationAttempt, int, error)
}

// FileMetaRepository defines the contract for uploaded-file metadata
// persistence.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileMeta, error)
	UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error
}

// CategoryRepository defines the contract for the document-category keyword
// table.
type CategoryRepository interface {
	LoadAll(ctx context.Context) ([]domain.DocumentCategory, error)
	ReplaceAll(ctx context.Context, categories []domain.DocumentCategory) error
}
