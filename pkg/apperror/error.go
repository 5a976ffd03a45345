package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status and a stable code.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal cause attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
		Details:    e.Details,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
		Details:    e.Details,
	}
}

// WithDetails returns a copy of the error with details attached
func (e *Error) WithDetails(details map[string]any) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   e.Internal,
		Details:    details,
	}
}

func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrNotFound        = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrBadRequest      = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrValidation      = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")
	ErrConflict        = New(http.StatusConflict, "conflict", "Request conflicts with current state")
	ErrTooManyRequests = New(http.StatusTooManyRequests, "rate_limited", "Too many requests, slow down")
	ErrInternal        = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// As reports whether err is, or wraps, an *Error and returns it.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewValidation creates a validation error listing the offending fields.
func NewValidation(fields []string) *Error {
	return ErrValidation.WithDetails(map[string]any{"fields": fields})
}

func NewInternal(message string, err error) *Error {
	return &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    message,
		Internal:   err,
	}
}
