package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// AppError carries a sentinel (for errors.Is checks) plus the human-readable
// message the API returns to the caller. The HTTP layer maps sentinels to
// status codes; everything that is not an AppError becomes a generic 500.
type AppError struct {
	Err     error  // sentinel identifying the category
	Message string // message exposed to the client
	Field   string // optional: field causing a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict is used for duplicate unique fields (registration only).
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// Forbidden means the session is valid but the caller does not own the
// resource. HTTP handlers map this to 403.
func Forbidden() *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: "Forbidden",
	}
}

// Unauthorized means there is no valid session at all. Maps to 401.
func Unauthorized() *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: "Unauthorized",
	}
}
