// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// State is the lifecycle state of a [Controller].
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSucceeded
	StateResolving
	StateInvalidLink
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateResolving:
		return "resolving"
	case StateInvalidLink:
		return "invalid_link"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateInvalidLink
}

// Ticket identifies one outstanding asynchronous operation of a controller.
// Results are accepted only for the ticket currently pending; anything else
// is a late result of a discarded operation.
type Ticket uint64

// tickets are unique process-wide so that a result addressed to a discarded
// controller can never match a newer one.
var ticketSeq atomic.Uint64

func nextTicket() Ticket {
	return Ticket(ticketSeq.Add(1))
}

// Submission is handed to the transport once a form passes validation.
type Submission struct {
	Ticket Ticket

	// Values is the submitted payload: a copy of the draft with conditional
	// fields resolved.
	Values Draft
}

// Controller is the validation state machine of one form instance. It is not
// safe for concurrent use; it is meant to be driven from a single event loop
// and performs no I/O itself.
type Controller struct {
	schema *Schema

	draft   Draft
	touched map[string]struct{}
	errs    map[string]string

	state   State
	pending Ticket
	notice  string
	result  any
}

// NewController creates a form instance with the schema's defaults. Schemas
// built [WithContextResolution] start in [StateResolving].
func NewController(schema *Schema) *Controller {
	c := &Controller{
		schema:  schema,
		draft:   schema.defaults(),
		touched: make(map[string]struct{}),
		errs:    make(map[string]string),
		state:   StateEditing,
	}
	if schema.resolvesContext {
		c.state = StateResolving
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// CanSubmit reports whether the submit control is available.
func (c *Controller) CanSubmit() bool {
	return c.state == StateEditing
}

// Value returns the current value of the named field.
func (c *Controller) Value(name string) Value {
	return c.draft[name]
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	return c.draft.clone()
}

// Touched reports whether the user has interacted with the named field.
func (c *Controller) Touched(name string) bool {
	_, ok := c.touched[name]
	return ok
}

// Error returns the validation message of the named field, or "" when valid.
// Messages only exist for touched fields.
func (c *Controller) Error(name string) string {
	return c.errs[name]
}

// Errors returns a copy of the non-empty validation messages.
func (c *Controller) Errors() map[string]string {
	out := make(map[string]string, len(c.errs))
	for k, v := range c.errs {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Active reports whether the named field currently applies. Only conditional
// fields can be inactive.
func (c *Controller) Active(name string) bool {
	f, ok := c.schema.field(name)
	if !ok {
		return false
	}
	return c.schema.active(f, c.draft)
}

// Notice returns the global message of the last failed submission.
func (c *Controller) Notice() string {
	return c.notice
}

// Result returns the payload stored on success.
func (c *Controller) Result() any {
	return c.result
}

// SetField updates a draft value. A touched field is re-validated. When the
// field controls conditional fields, dependents that no longer apply are
// cleared and touched dependents are re-validated. Writes to an inactive
// conditional field are ignored and leave it at its default.
func (c *Controller) SetField(name string, v Value) error {
	if c.state != StateEditing {
		return ErrNotEditable
	}
	f, ok := c.schema.field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if v.Kind() != f.Default.Kind() {
		return fmt.Errorf("%w: %q wants %s, got %s", ErrKindMismatch, name, f.Default.Kind(), v.Kind())
	}

	if !c.schema.active(f, c.draft) {
		c.draft[name] = f.Default
		return nil
	}

	c.draft[name] = v
	if c.Touched(name) {
		c.revalidate(f)
	}

	for _, childName := range c.schema.children[name] {
		child, _ := c.schema.field(childName)
		if !c.schema.active(child, c.draft) {
			c.draft[childName] = child.Default
		}
		if c.Touched(childName) {
			c.revalidate(child)
		}
	}

	return nil
}

// BlurField marks the named field as touched and validates it.
func (c *Controller) BlurField(name string) error {
	if c.state != StateEditing {
		return ErrNotEditable
	}
	f, ok := c.schema.field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if !f.validable() {
		return nil
	}

	c.touched[name] = struct{}{}
	c.revalidate(f)
	return nil
}

// BeginSubmit is the submit attempt. It touches and validates every validable
// field. If any is invalid the form stays in [StateEditing] and
// [ErrValidation] is returned; the transport must not be called. Otherwise the
// form moves to [StateSubmitting] and the payload to send is returned.
func (c *Controller) BeginSubmit() (Submission, error) {
	switch c.state {
	case StateEditing:
	case StateSubmitting:
		return Submission{}, ErrSubmitInFlight
	default:
		return Submission{}, ErrNotEditable
	}

	valid := true
	for _, f := range c.schema.fields {
		if !f.validable() {
			continue
		}
		c.touched[f.Name] = struct{}{}
		if c.revalidate(f) != "" {
			valid = false
		}
	}
	if !valid {
		return Submission{}, ErrValidation
	}

	c.state = StateSubmitting
	c.notice = ""
	c.pending = nextTicket()

	return Submission{Ticket: c.pending, Values: c.schema.payload(c.draft)}, nil
}

// FinishSubmit applies the outcome of the submission identified by t. On
// success the form becomes [StateSucceeded] and result is stored. On failure
// it returns to [StateEditing] with a notice, preferring the server-supplied
// detail of err over the schema's fallback message; draft and touched set are
// kept as they were. It reports false and changes nothing when t is stale.
func (c *Controller) FinishSubmit(t Ticket, result any, err error) bool {
	if c.state != StateSubmitting || t == 0 || t != c.pending {
		return false
	}
	c.pending = 0

	if err != nil {
		c.state = StateEditing
		c.notice = c.noticeFor(err)
		return true
	}

	c.state = StateSucceeded
	c.result = result
	return true
}

// BeginResolve starts the one-shot context lookup for token. A blank token
// moves the form straight to [StateInvalidLink] and returns
// [ErrMissingToken].
func (c *Controller) BeginResolve(token string) (Ticket, error) {
	if c.state != StateResolving || c.pending != 0 {
		return 0, ErrNotResolving
	}
	if strings.TrimSpace(token) == "" {
		c.state = StateInvalidLink
		return 0, ErrMissingToken
	}

	c.pending = nextTicket()
	return c.pending, nil
}

// FinishResolve applies the lookup outcome: [StateEditing] on success,
// terminal [StateInvalidLink] on any failure. It reports false when t is
// stale.
func (c *Controller) FinishResolve(t Ticket, err error) bool {
	if c.state != StateResolving || t == 0 || t != c.pending {
		return false
	}
	c.pending = 0

	if err != nil {
		c.state = StateInvalidLink
		return true
	}
	c.state = StateEditing
	return true
}

// Discard drops the pending operation, if any. Its result will be ignored.
// It is called when the form goes away before the operation completes.
func (c *Controller) Discard() {
	c.pending = 0
}

func (c *Controller) revalidate(f Field) string {
	msg := c.schema.check(f, c.draft)
	c.errs[f.Name] = msg
	return msg
}

func (c *Controller) noticeFor(err error) string {
	if detail := strings.TrimSpace(DetailOf(err)); detail != "" {
		return detail
	}
	return c.schema.fallback
}
