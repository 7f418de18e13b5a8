// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"fmt"
	"strings"
)

// Activation is a "field activates field" edge: the owning field only applies
// while the controlling Field holds the sentinel value Equals.
type Activation struct {
	// Field is the name of the controlling field.
	Field string

	// Equals is the sentinel value of the controlling field.
	Equals string

	// Substitute, when set, puts the dependent value into the controlling
	// field's slot of the submitted payload while the edge is active.
	Substitute bool
}

// Field configures one form field.
type Field struct {
	Name    string
	Label   string
	Default Value

	// Rules is the field's rule table. Fields without rules (consent
	// checkboxes) are never validated and can never carry an error.
	Rules []Rule

	// ActivatedBy makes this a conditional field.
	ActivatedBy *Activation
}

func (f Field) validable() bool {
	return len(f.Rules) > 0
}

// Schema is an immutable, validated set of fields plus form-level settings.
type Schema struct {
	fields   []Field
	index    map[string]int
	children map[string][]string

	resolvesContext bool
	fallback        string
}

// Option configures a [Schema].
type Option func(*Schema)

// WithContextResolution makes forms of this schema start in
// [StateResolving]; editing is possible only after a successful lookup.
func WithContextResolution() Option {
	return func(s *Schema) {
		s.resolvesContext = true
	}
}

// WithFallbackMessage sets the notice shown for a failed submission when the
// failure carries no server-supplied detail.
func WithFallbackMessage(message string) Option {
	return func(s *Schema) {
		s.fallback = message
	}
}

// NewSchema validates the field configuration and builds a [Schema].
//
// It returns [ErrInvalidSchema] (wrapped) on an empty or duplicate field name,
// an activation edge pointing at an unknown field or at itself, and on
// chained activation edges.
func NewSchema(fields []Field, opts ...Option) (*Schema, error) {
	s := &Schema{
		fields:   make([]Field, 0, len(fields)),
		index:    make(map[string]int, len(fields)),
		children: make(map[string][]string),
		fallback: "Something went wrong. Please try again.",
	}

	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidSchema)
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, name)
		}
		f.Name = name
		s.index[name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	for _, f := range s.fields {
		if f.ActivatedBy == nil {
			continue
		}
		parent, ok := s.field(f.ActivatedBy.Field)
		if !ok || parent.Name == f.Name {
			return nil, fmt.Errorf("%w: field %q activated by unknown field %q", ErrInvalidSchema, f.Name, f.ActivatedBy.Field)
		}
		if parent.ActivatedBy != nil {
			return nil, fmt.Errorf("%w: field %q activated by conditional field %q", ErrInvalidSchema, f.Name, parent.Name)
		}
		s.children[parent.Name] = append(s.children[parent.Name], f.Name)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// MustSchema is like [NewSchema] but panics on error.
func MustSchema(fields []Field, opts ...Option) *Schema {
	s, err := NewSchema(fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the named field.
func (s *Schema) Field(name string) (Field, bool) {
	return s.field(name)
}

func (s *Schema) field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

func (s *Schema) defaults() Draft {
	d := make(Draft, len(s.fields))
	for _, f := range s.fields {
		d[f.Name] = f.Default
	}
	return d
}

// active reports whether f applies under draft d.
func (s *Schema) active(f Field, d Draft) bool {
	if f.ActivatedBy == nil {
		return true
	}
	return d.Text(f.ActivatedBy.Field) == f.ActivatedBy.Equals
}

// check computes the message of field f under draft d. Inactive conditional
// fields are always valid.
func (s *Schema) check(f Field, d Draft) string {
	if !s.active(f, d) {
		return ""
	}
	return checkAll(f.Rules, d[f.Name])
}

// payload builds the submitted values: inactive conditional fields are
// dropped and active substituting ones replace their controller's value.
func (s *Schema) payload(d Draft) Draft {
	out := d.clone()
	for _, f := range s.fields {
		if f.ActivatedBy == nil {
			continue
		}
		if !s.active(f, d) {
			delete(out, f.Name)
			continue
		}
		if f.ActivatedBy.Substitute {
			out[f.ActivatedBy.Field] = TextValue(strings.TrimSpace(d.Text(f.Name)))
			delete(out, f.Name)
		}
	}
	return out
}
