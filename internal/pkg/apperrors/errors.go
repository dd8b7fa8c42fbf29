package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrNoteNotFound     = errors.New("note not found")

	// Authentication errors
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Processing pipeline errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrExtractionFailed    = errors.New("content extraction failed")
	ErrProcessingFailed    = errors.New("note processing failed")
)

// Collaborator errors
var (
	ErrCollaboratorNotFound = errors.New("collaborator not found")
)

// NewBadRequestError creates a custom bad request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewProcessingError wraps an extraction or enrichment failure with context
func NewProcessingError(message string) error {
	return &CustomError{
		Err:     ErrProcessingFailed,
		Message: message,
	}
}
