package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a state precondition no longer holds,
// e.g. deciding a payment that is no longer PENDING.
var ErrConflict = errors.New("conflict error")

// ErrInvalidInput indicates a required external input is missing or unusable,
// e.g. a commission batch referencing a currency with no conversion rate.
var ErrInvalidInput = errors.New("invalid input")

// ErrForbidden indicates the authenticated user lacks the capability for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected internal failure that should surface
// as a transport-level error rather than a business result.
var ErrInternal = errors.New("internal error")

// AppError carries a status code alongside a message and an optional cause.
// Repositories use it to wrap infrastructure failures.
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

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
