package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFieldRequired      = errors.New("field required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidMobile      = errors.New("invalid mobile number")
	ErrRatingOutOfRange   = errors.New("star rating out of range")
	ErrFeedbackTooLong    = errors.New("textual feedback too long")
	ErrFeedbackIsRequired = errors.New("textual feedback is required")
)

// FieldError reports one invalid field of a request body.
type FieldError struct {
	// Field is the JSON name of the field.
	Field string

	// Message is the human-readable reason.
	Message string

	// Type is a short machine-readable code such as "missing" or
	// "string_too_long".
	Type string

	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors collects every failing field of one request.
type FieldErrors []*FieldError

func (e FieldErrors) Error() string {
	switch len(e) {
	case 0:
		return "no validation errors"
	case 1:
		return e[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", e[0].Error(), len(e)-1)
	}
}

// Unwrap exposes the individual field errors to [errors.Is] and [errors.As].
func (e FieldErrors) Unwrap() []error {
	out := make([]error, len(e))
	for i, fe := range e {
		out[i] = fe
	}
	return out
}

// orNil returns nil for an empty list so callers can compare with nil.
func (e FieldErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
