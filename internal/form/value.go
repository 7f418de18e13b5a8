// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "strconv"

// Kind identifies the type carried by a [Value].
type Kind int

const (
	KindText Kind = iota
	KindBool
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a tagged form value: text, a boolean flag or a small integer.
// The zero Value is empty text.
type Value struct {
	kind Kind
	text string
	flag bool
	num  int
}

// TextValue wraps a string.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// IntValue wraps an integer.
func IntValue(n int) Value {
	return Value{kind: KindInt, num: n}
}

// Kind returns the carried type.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the string for text values and a rendering of the value for
// the other kinds.
func (v Value) Text() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindInt:
		return strconv.Itoa(v.num)
	default:
		return v.text
	}
}

// Bool returns the flag of a boolean value; false for other kinds.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.flag
}

// Int returns the number of an integer value; 0 for other kinds.
func (v Value) Int() int {
	if v.kind != KindInt {
		return 0
	}
	return v.num
}

// Draft maps field names to their current values.
type Draft map[string]Value

// Text returns the text of the named field.
func (d Draft) Text(name string) string {
	return d[name].Text()
}

// Bool returns the flag of the named field.
func (d Draft) Bool(name string) bool {
	return d[name].Bool()
}

// Int returns the number of the named field.
func (d Draft) Int(name string) int {
	return d[name].Int()
}

func (d Draft) clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
