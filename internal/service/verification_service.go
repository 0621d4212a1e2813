package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/Theijiii/plms-sys-sub005/internal/csvexport"
	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/port"
	"github.com/Theijiii/plms-sys-sub005/internal/verify"
)

// SubmitInput is the DTO for a verification submission: the declared identity
// plus the uploaded document image.
type SubmitInput struct {
	ApplicantID    uuid.UUID
	ApplicantEmail string
	ApplicantName  string
	Declared       verify.DeclaredIdentity
	File           FileUploadInput
}

// SubmitOutput pairs the persisted attempt with its decoded report.
type SubmitOutput struct {
	Attempt *domain.VerificationAttempt
	Report  *verify.VerificationReport
	Valid   bool
	Reasons []string
}

// VerificationService orchestrates a full verification attempt: store the
// image, recognize its text, run the engine, persist the outcome.
type VerificationService interface {
	Submit(ctx context.Context, input SubmitInput) (*SubmitOutput, error)
	GetByID(ctx context.Context, callerID uuid.UUID, callerRole domain.UserRole, attemptID uuid.UUID) (*domain.VerificationAttempt, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, offset, limit int) ([]domain.VerificationAttempt, int, error)
	List(ctx context.Context, offset, limit int) ([]domain.VerificationAttempt, int, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type verificationService struct {
	engine      *verify.Engine
	files       FileService
	recognizer  port.TextRecognizer
	attemptRepo port.AttemptRepository
	email       port.EmailSender
}

// NewVerificationService creates a new VerificationService implementation.
func NewVerificationService(
	engine *verify.Engine,
	files FileService,
	recognizer port.TextRecognizer,
	attemptRepo port.AttemptRepository,
	email port.EmailSender,
) VerificationService {
	return &verificationService{
		engine:      engine,
		files:       files,
		recognizer:  recognizer,
		attemptRepo: attemptRepo,
		email:       email,
	}
}

func (s *verificationService) Submit(ctx context.Context, input SubmitInput) (*SubmitOutput, error) {
	// Reject incomplete declarations before any upload happens.
	if err := s.engine.CheckPreconditions(input.Declared); err != nil {
		return nil, err
	}

	meta, err := s.files.Upload(ctx, input.File)
	if err != nil {
		return nil, err
	}

	// Read back through storage so recognition always sees exactly the
	// stored bytes.
	data, _, err := s.files.Download(ctx, meta.ID)
	if err != nil {
		return nil, err
	}

	recognized, err := s.recognizer.Recognize(ctx, port.RecognizeInput{
		Bytes:       data,
		ContentType: meta.ContentType,
		Progress: func(percent int) {
			log.Printf("verificationService.Submit: recognition %d%% for file %s", percent, meta.ID)
		},
	})
	if err != nil {
		// Recognition failure is still a recorded attempt, so the history
		// shows the applicant tried.
		attempt := &domain.VerificationAttempt{
			ID:             uuid.New(),
			ApplicantID:    input.ApplicantID,
			FileID:         meta.ID,
			DeclaredIDType: input.Declared.IDType,
			Status:         domain.AttemptStatusRecognitionFailed,
		}
		if createErr := s.attemptRepo.Create(ctx, attempt); createErr != nil {
			log.Printf("verificationService.Submit: failed to record failed attempt: %v", createErr)
		}
		return nil, err
	}

	report, err := s.engine.Verify(input.Declared, recognized.Text)
	if err != nil {
		return nil, err
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}

	attempt := &domain.VerificationAttempt{
		ID:             uuid.New(),
		ApplicantID:    input.ApplicantID,
		FileID:         meta.ID,
		DeclaredIDType: input.Declared.IDType,
		Status:         domain.AttemptStatusCompleted,
		Report:         reportJSON,
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("recording attempt: %w", err)
	}

	valid := report.Valid()
	reasons := report.Reasons()
	log.Printf("verificationService.Submit: attempt %s for applicant %s: valid=%t reasons=%d",
		attempt.ID, input.ApplicantID, valid, len(reasons))

	// Outcome notification is best effort; a mail outage must not fail the
	// attempt.
	if input.ApplicantEmail != "" {
		if err := s.email.SendVerificationOutcome(ctx, input.ApplicantEmail, input.ApplicantName, port.VerificationOutcome{
			Valid:   valid,
			IDType:  input.Declared.IDType,
			Reasons: reasons,
		}); err != nil {
			log.Printf("verificationService.Submit: outcome email to %s failed: %v", input.ApplicantEmail, err)
		}
	}

	return &SubmitOutput{
		Attempt: attempt,
		Report:  report,
		Valid:   valid,
		Reasons: reasons,
	}, nil
}

func (s *verificationService) GetByID(ctx context.Context, callerID uuid.UUID, callerRole domain.UserRole, attemptID uuid.UUID) (*domain.VerificationAttempt, error) {
	attempt, err := s.attemptRepo.GetByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	// Applicants can only see their own attempts.
	if callerRole != domain.RoleStaff && attempt.ApplicantID != callerID {
		return nil, domain.ErrForbidden
	}
	return attempt, nil
}

func (s *verificationService) ListByApplicant(ctx context.Context, applicantID uuid.UUID, offset, limit int) ([]domain.VerificationAttempt, int, error) {
	return s.attemptRepo.ListByApplicant(ctx, applicantID, offset, limit)
}

func (s *verificationService) List(ctx context.Context, offset, limit int) ([]domain.VerificationAttempt, int, error) {
	return s.attemptRepo.List(ctx, offset, limit)
}

// ExportCSV streams all attempts as CSV, paging through the repository.
func (s *verificationService) ExportCSV(ctx context.Context, w io.Writer) error {
	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	writer := csvexport.NewWriter(w)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		attempts, total, err := s.attemptRepo.List(ctx, offset, pageSize)
		if err != nil {
			return fmt.Errorf("listing attempts for export: %w", err)
		}
		if err := writer.WriteAttempts(attempts); err != nil {
			return fmt.Errorf("writing CSV rows: %w", err)
		}
		if offset+len(attempts) >= total || len(attempts) == 0 {
			break
		}
	}

	writer.Flush()
	return writer.Error()
}
