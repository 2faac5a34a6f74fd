package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError is returned when a user, category, item, merchant or
// recommendation set does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// StatusCode returns the HTTP status for the error.
func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// NotFound creates a NotFoundError with a formatted message.
func NotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError wraps a failed call to the remote catalog. Status carries the
// remote status code, or 500 for transport and decoding faults.
type UpstreamError struct {
	Status int
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// StatusCode returns the remote status or 500 when none is known.
func (e *UpstreamError) StatusCode() int {
	if e.Status < 400 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// StorageError is returned when a database write or read fails for a reason
// other than a missing row.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) StatusCode() int { return http.StatusInternalServerError }

// ValidationError is returned for malformed client input.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// ConflictError is returned when a unique record already exists.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) StatusCode() int { return http.StatusConflict }

type statusCoder interface {
	StatusCode() int
}

// Status maps an error chain to the HTTP status surfaced to callers.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// UnexpectedMessage is the client-facing detail of untyped failures.
const UnexpectedMessage = "An unexpected error occurred"

// Detail returns the client-facing message for err. Typed errors expose their
// own message; wrapping context added by services is dropped. Storage and
// untyped errors never expose driver text.
func Detail(err error) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Message
	}
	var up *UpstreamError
	if errors.As(err, &up) {
		return up.Error()
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Message
	}
	var se *StorageError
	if errors.As(err, &se) {
		return "Failed to " + se.Op
	}
	return UnexpectedMessage
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
