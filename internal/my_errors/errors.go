package my_errors

import "errors"

// Sentinel my_errors for the batch pipeline
var (
	// Input my_errors
	ErrMalformedUsers     = errors.New("malformed users input")
	ErrMalformedCompanies = errors.New("malformed companies input")
)

// ValidationError carries the human-readable message for the first field
// that failed validation on an input record.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
