package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FileMeta holds metadata for an uploaded ID document image.
type FileMeta struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UploadedBy   uuid.UUID  `db:"uploaded_by" json:"uploaded_by"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"-"`
	S3Key        string     `db:"s3_key" json:"-"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// VerificationAttempt is the persistence record for one run of the
// verification engine against one uploaded document. The full report is kept
// as JSON; whether the attempt passed is derived from the report on read.
type VerificationAttempt struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	ApplicantID    uuid.UUID       `db:"applicant_id" json:"applicant_id"`
	FileID         uuid.UUID       `db:"file_id" json:"file_id"`
	DeclaredIDType string          `db:"declared_id_type" json:"declared_id_type"`
	Status         AttemptStatus   `db:"status" json:"status"`
	Report         json.RawMessage `db:"report" json:"report,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// DocumentCategory is one identity-document category with the keyword set
// distinctive of it. Categories are reference data, editable without touching
// the matching algorithms.
type DocumentCategory struct {
	Label    string   `db:"label" json:"label"`
	Keywords []string `db:"-" json:"keywords"`
	// KeywordsRaw is the comma-separated database representation.
	KeywordsRaw string `db:"keywords" json:"-"`
	// Position fixes the table order; ties during classification resolve to
	// the earlier category.
	Position int `db:"position" json:"-"`
}
