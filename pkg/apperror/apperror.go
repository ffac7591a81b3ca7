// Package apperror defines the typed application errors that the error
// translation middleware maps to HTTP responses.
package apperror

import (
	"fmt"
	"net/http"
)

// Error is the unified application error type. Status and Label drive the
// translated HTTP response; Err is the wrapped cause, if any.
type Error struct {
	Status  int
	Label   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Label, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Label, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Err = cause
	return e
}

// New creates an Error with an explicit status; the label defaults to the
// status reason phrase.
func New(status int, message string) *Error {
	return &Error{
		Status:  status,
		Label:   http.StatusText(status),
		Message: message,
	}
}

// NotFound reports that the requested resource does not exist.
func NotFound(resource, id string) *Error {
	msg := fmt.Sprintf("%s not found", resource)
	if id != "" {
		msg = fmt.Sprintf("%s %q not found", resource, id)
	}
	return New(http.StatusNotFound, msg)
}

// Forbidden reports that the caller is not allowed to perform the operation.
func Forbidden(reason string) *Error {
	if reason == "" {
		reason = "you do not have permission to perform this action"
	}
	return New(http.StatusForbidden, reason)
}

// Conflict reports that the request conflicts with existing data, e.g. a
// duplicate unique field.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// InvalidParam reports a missing or malformed request parameter.
func InvalidParam(message string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Label:   "Invalid Parameter",
		Message: message,
	}
}

// Internal wraps an unexpected failure as a 500 error.
func Internal(cause error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Label:   http.StatusText(http.StatusInternalServerError),
		Message: "an unexpected error occurred, please try again",
		Err:     cause,
	}
}
