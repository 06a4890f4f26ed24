package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnexpectedStatus is wrapped by StatusError for any non-success answer that is not a conflict.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrConflict is wrapped by ConflictError.
	ErrConflict = errors.New("conflict")
)

// ConflictError is returned when the service rejects a write with 409 Conflict.
// Message is the server's explanation, e.g. "Email already taken".
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConflict, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// StatusError is returned for every other non-2xx answer. Message holds the body's
// "message" field when the service sent one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// ServerMessage extracts the message the service attached to err, if any.
func ServerMessage(err error) string {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.Message
	}

	var status *StatusError
	if errors.As(err, &status) {
		return status.Message
	}

	return ""
}
