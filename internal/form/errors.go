// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "errors"

var (
	ErrInvalidSchema = errors.New("invalid form schema")
	ErrUnknownField  = errors.New("unknown form field")
	ErrKindMismatch  = errors.New("value kind does not match field")

	// ErrNotEditable is returned by edits outside [StateEditing].
	ErrNotEditable = errors.New("form is not editable")

	// ErrSubmitInFlight is returned by BeginSubmit while a submission is
	// pending.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrValidation is returned by BeginSubmit when at least one field is
	// invalid. The per-field messages are available from the controller.
	ErrValidation = errors.New("form has invalid fields")

	ErrNotResolving = errors.New("form is not resolving context")
	ErrMissingToken = errors.New("survey token is missing")
)

// Detailer is implemented by transport errors carrying a server-supplied,
// user-facing message.
type Detailer interface {
	Detail() string
}

// DetailOf returns the detail of the first [Detailer] in err's chain.
func DetailOf(err error) string {
	var d Detailer
	if errors.As(err, &d) {
		return d.Detail()
	}
	return ""
}
