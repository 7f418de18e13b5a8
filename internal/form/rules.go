// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// RuleKind tags the variant of a [Rule].
type RuleKind int

const (
	// RuleRequired fails on text that is empty after trimming whitespace.
	RuleRequired RuleKind = iota
	// RulePattern fails on non-empty trimmed text not matching Pattern.
	RulePattern
	// RuleLength fails when the trimmed text length in characters is outside
	// [Min, Max]. A zero bound is not checked.
	RuleLength
	// RuleRange fails on integers outside [Min, Max].
	RuleRange
)

// Rule is one entry of a field's rule table. Rules are pure functions of the
// current value; the first failing rule of a field supplies its message.
type Rule struct {
	Kind    RuleKind
	Pattern *regexp.Regexp
	Min     int
	Max     int
	Message string
}

// Required builds a [RuleRequired] rule.
func Required(message string) Rule {
	return Rule{Kind: RuleRequired, Message: message}
}

// Pattern builds a [RulePattern] rule. It panics if expr does not compile, so
// it is meant for package-level rule tables.
func Pattern(expr, message string) Rule {
	return Rule{Kind: RulePattern, Pattern: regexp.MustCompile(expr), Message: message}
}

// Length builds a [RuleLength] rule.
func Length(min, max int, message string) Rule {
	return Rule{Kind: RuleLength, Min: min, Max: max, Message: message}
}

// Range builds a [RuleRange] rule.
func Range(min, max int, message string) Rule {
	return Rule{Kind: RuleRange, Min: min, Max: max, Message: message}
}

// Check returns the rule's message when v violates it, or "" when v passes.
func (r Rule) Check(v Value) string {
	if r.ok(v) {
		return ""
	}
	return r.Message
}

func (r Rule) ok(v Value) bool {
	switch r.Kind {
	case RuleRequired:
		if v.Kind() != KindText {
			return true
		}
		return strings.TrimSpace(v.Text()) != ""

	case RulePattern:
		s := strings.TrimSpace(v.Text())
		if s == "" || r.Pattern == nil {
			return true
		}
		return r.Pattern.MatchString(s)

	case RuleLength:
		n := utf8.RuneCountInString(strings.TrimSpace(v.Text()))
		if r.Min > 0 && n < r.Min {
			return false
		}
		if r.Max > 0 && n > r.Max {
			return false
		}
		return true

	case RuleRange:
		if v.Kind() != KindInt {
			return false
		}
		return v.Int() >= r.Min && v.Int() <= r.Max
	}

	return true
}

// checkAll runs rules in order and returns the first failure message.
func checkAll(rules []Rule, v Value) string {
	for _, rule := range rules {
		if msg := rule.Check(v); msg != "" {
			return msg
		}
	}
	return ""
}
