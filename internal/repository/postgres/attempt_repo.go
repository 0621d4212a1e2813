package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/port"
)

type attemptRepo struct {
	db *sqlx.DB
}

// NewAttemptRepo creates a new PostgreSQL-backed AttemptRepository.
func NewAttemptRepo(db *sqlx.DB) port.AttemptRepository {
	return &attemptRepo{db: db}
}

func (r *attemptRepo) Create(ctx context.Context, attempt *domain.VerificationAttempt) error {
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO verification_attempts (
		id, applicant_id, file_id, declared_id_type, status, report, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		attempt.ID, attempt.ApplicantID, attempt.FileID, attempt.DeclaredIDType,
		attempt.Status, attempt.Report, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("attemptRepo.Create: %w", err)
	}
	return nil
}

func (r *attemptRepo) GetByID(ctx context.Context, attemptID uuid.UUID) (*domain.VerificationAttempt, error) {
	var attempt domain.VerificationAttempt
	err := r.db.GetContext(ctx, &attempt,
		"SELECT * FROM verification_attempts WHERE id = $1", attemptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attemptRepo.GetByID: %w", err)
	}
	return &attempt, nil
}

func (r *attemptRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID, offset, limit int) ([]domain.VerificationAttempt, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM verification_attempts WHERE applicant_id = $1", applicantID)
	if err != nil {
		return nil, 0, fmt.Errorf("attemptRepo.ListByApplicant count: %w", err)
	}

	attempts := []domain.VerificationAttempt{}
	err = r.db.SelectContext(ctx, &attempts,
		`SELECT * FROM verification_attempts
		 WHERE applicant_id = $1
		 ORDER BY created_at DESC
		 OFFSET $2 LIMIT $3`, applicantID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("attemptRepo.ListByApplicant: %w", err)
	}
	return attempts, total, nil
}

func (r *attemptRepo) List(ctx context.Context, offset, limit int) ([]domain.VerificationAttempt, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM verification_attempts")
	if err != nil {
		return nil, 0, fmt.Errorf("attemptRepo.List count: %w", err)
	}

	attempts := []domain.VerificationAttempt{}
	err = r.db.SelectContext(ctx, &attempts,
		`SELECT * FROM verification_attempts
		 ORDER BY created_at DESC
		 OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("attemptRepo.List: %w", err)
	}
	return attempts, total, nil
}
