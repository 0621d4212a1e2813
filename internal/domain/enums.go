package domain

// FileType represents the allowed file types for ID document uploads.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// UserRole defines the caller roles recognized by this service. Tokens are
// issued by the portal backend; this service only validates them.
type UserRole string

const (
	RoleApplicant UserRole = "applicant"
	RoleStaff     UserRole = "staff"
)

// FileStatus represents the lifecycle of an uploaded document image.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)

// AttemptStatus represents the terminal state of a verification attempt.
// Whether a completed attempt passed or failed verification is derived from
// its report, never stored.
type AttemptStatus string

const (
	AttemptStatusCompleted         AttemptStatus = "completed"
	AttemptStatusRecognitionFailed AttemptStatus = "recognition_failed"
)
