// Package apperrors defines the error taxonomy shared by the stores,
// services and HTTP handlers: validation failures map to 400, unknown
// ids to 404 and backend failures to 500. Handlers never let any other
// error shape cross the response boundary.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports missing or malformed required input. It is
// returned before any mutation happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown entity id. Resource is the
// user-facing entity name ("Project", "Task", "Billing service",
// "File attachment").
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// StoreError wraps a backend or connectivity failure. The wrapped
// error message is surfaced to the client; credentials never appear in
// store error messages.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewValidation builds a ValidationError from a format string.
func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NewNotFound builds a NotFoundError for the named resource.
func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// NewStore wraps err as a StoreError. A nil err returns nil.
func NewStore(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusCode maps an error to its HTTP status. Unknown error kinds are
// treated as store failures.
func StatusCode(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
