package port

import (
	"context"
	"io"
)

// UploadInput carries a document scan into object storage.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput reports where the scan landed.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage holds applicant document scans. Scans are written once at
// submission and read back for recognition and staff review.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
