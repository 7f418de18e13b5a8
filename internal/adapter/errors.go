package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx response of the feedback API.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the server-supplied detail, empty when the body has none.
	Message string

	// Err is the sentinel matching Status.
	Err error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("http %d: %v: %s", e.Status, e.Err, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Detail returns the user-facing message sent by the server.
func (e *APIError) Detail() string {
	return e.Message
}
