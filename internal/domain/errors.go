package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrRecognitionFailed   = errors.New("text recognition failed")
)

// PreconditionError indicates the caller omitted a required declared field or
// supplied no recognized text. It is fatal to the current attempt and is never
// confused with a negative verification result.
type PreconditionError struct {
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// NewPreconditionError creates a PreconditionError for the named input field.
func NewPreconditionError(field string) error {
	return &PreconditionError{Field: field}
}

// IsPrecondition reports whether err is a PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}
