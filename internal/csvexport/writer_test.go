package csvexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/verify"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 14)
	assert.Equal(t, "Attempt ID", row[0])
	assert.Equal(t, "Valid", row[5])
	assert.Equal(t, "Created At", row[13])
}

func TestWriteAttempts_Completed(t *testing.T) {
	report := verify.VerificationReport{
		FirstName: verify.FieldMatch{Matched: true, Confidence: 0.9, Value: "Juan"},
		LastName:  verify.FieldMatch{Matched: true, Confidence: 1.0, Value: "Dela Cruz"},
		IDNumber:  verify.FieldMatch{Matched: true, Confidence: 1.0, Value: "A12-34-567890"},
		IDType: verify.DocumentTypeFinding{
			DetectedType: "Driver's License (LTO)",
			SelectedType: "Driver's License (LTO)",
			Matched:      true,
			Confidence:   0.75,
		},
	}
	reportJSON, err := json.Marshal(report)
	require.NoError(t, err)

	attempt := domain.VerificationAttempt{
		ID:             uuid.New(),
		ApplicantID:    uuid.New(),
		FileID:         uuid.New(),
		DeclaredIDType: "Driver's License (LTO)",
		Status:         domain.AttemptStatusCompleted,
		Report:         reportJSON,
		CreatedAt:      time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteAttempts([]domain.VerificationAttempt{attempt}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, attempt.ID.String(), row[0])
	assert.Equal(t, "completed", row[4])
	assert.Equal(t, "true", row[5])
	assert.Equal(t, "Driver's License (LTO)", row[6])
	assert.Equal(t, "true (0.90)", row[7])
	assert.Equal(t, "", row[10]) // no birthdate declared
	assert.Equal(t, "false", row[11])
	assert.Equal(t, "", row[12]) // valid: no reasons
	assert.Equal(t, "2026-08-01T09:00:00Z", row[13])
}

func TestWriteAttempts_FailedFields(t *testing.T) {
	report := verify.VerificationReport{
		FirstName: verify.FieldMatch{Matched: false, Value: "Juan"},
		LastName:  verify.FieldMatch{Matched: true, Confidence: 1.0, Value: "Dela Cruz"},
		IDNumber:  verify.FieldMatch{Matched: true, Confidence: 1.0, Value: "A12-34-567890"},
		IDType: verify.DocumentTypeFinding{
			DetectedType: "Passport (DFA)",
			SelectedType: "Driver's License (LTO)",
		},
	}
	reportJSON, err := json.Marshal(report)
	require.NoError(t, err)

	attempt := domain.VerificationAttempt{
		ID:        uuid.New(),
		Status:    domain.AttemptStatusCompleted,
		Report:    reportJSON,
		CreatedAt: time.Now().UTC(),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteAttempts([]domain.VerificationAttempt{attempt}))
	w.Flush()

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)

	row := rows[0]
	assert.Equal(t, "false", row[5])
	assert.Contains(t, row[12], "document type mismatch")
	assert.Contains(t, row[12], `first name "Juan"`)
}

func TestWriteAttempts_RecognitionFailed(t *testing.T) {
	attempt := domain.VerificationAttempt{
		ID:             uuid.New(),
		ApplicantID:    uuid.New(),
		FileID:         uuid.New(),
		DeclaredIDType: "UMID",
		Status:         domain.AttemptStatusRecognitionFailed,
		CreatedAt:      time.Now().UTC(),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteAttempts([]domain.VerificationAttempt{attempt}))
	w.Flush()

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)

	row := rows[0]
	assert.Equal(t, "recognition_failed", row[4])
	// Report columns stay empty when there is nothing to report.
	for _, i := range []int{5, 6, 7, 8, 9, 10, 11, 12} {
		assert.Equal(t, "", row[i])
	}
}

func TestWriteAttempts_MalformedReport(t *testing.T) {
	attempt := domain.VerificationAttempt{
		ID:        uuid.New(),
		Status:    domain.AttemptStatusCompleted,
		Report:    []byte("{not json"),
		CreatedAt: time.Now().UTC(),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteAttempts([]domain.VerificationAttempt{attempt}))
	w.Flush()

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", rows[0][5])
}
