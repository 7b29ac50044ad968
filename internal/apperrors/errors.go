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

// ErrInvalidFormat indicates a malformed identifier (account number, document number).
var ErrInvalidFormat = errors.New("invalid format")

// ErrInvalidMovementSet indicates that a document's movements break the rules of its type.
var ErrInvalidMovementSet = errors.New("invalid movement set")

// ErrConflict indicates a concurrent modification or an illegal state change.
var ErrConflict = errors.New("conflict")

// ErrForbidden indicates the caller lacks the privilege required for the action.
var ErrForbidden = errors.New("permission denied")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure in an underlying dependency.
var ErrInternal = errors.New("internal error")

// AppError wraps an infrastructure failure with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FieldError is a validation failure bound to a single input field.
// It matches both ErrValidation and its Kind through errors.Is.
type FieldError struct {
	Kind    error
	Field   string
	Value   string
	Message string
}

// NewFieldError builds a FieldError of the given kind.
func NewFieldError(kind error, field, value, message string) *FieldError {
	return &FieldError{Kind: kind, Field: field, Value: value, Message: message}
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Message)
}

func (e *FieldError) Unwrap() []error {
	if e.Kind == nil || e.Kind == ErrValidation {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Kind}
}
