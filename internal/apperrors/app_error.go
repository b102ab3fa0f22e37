package apperrors

import "fmt"

// AppError is a structured application error carrying an HTTP-ish status code,
// a human readable message and an optional wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause so errors.Is/As keep working.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewConflictError creates an AppError wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates an AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewForbiddenError creates an AppError wrapping ErrForbidden.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: 403, Message: message, Err: ErrForbidden}
}
