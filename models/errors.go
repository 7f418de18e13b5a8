// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ErrorResponse is the error body returned by the feedback API.
//
// Detail is usually a string ("Invalid or expired survey link"), but request
// validation failures carry a list of {loc, msg, type} entries instead, so it
// is kept raw and decoded by [ErrorResponse.Message].
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// ValidationIssue is one entry of a request validation failure. Loc mixes
// names and list indexes, e.g. ["body", "items", 0].
type ValidationIssue struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// Message returns the human-readable detail, or an empty string when the body
// carries none.
func (e ErrorResponse) Message() string {
	if len(e.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return s
	}

	var issues []ValidationIssue
	if err := json.Unmarshal(e.Detail, &issues); err == nil {
		for _, issue := range issues {
			if issue.Msg != "" {
				return issue.Msg
			}
		}
	}

	return ""
}

// NewErrorResponse builds an [ErrorResponse] carrying a plain string detail.
func NewErrorResponse(detail string) ErrorResponse {
	raw, _ := json.Marshal(detail)
	return ErrorResponse{Detail: raw}
}

// NewValidationErrorResponse builds an [ErrorResponse] carrying a list of
// validation issues.
func NewValidationErrorResponse(issues ...ValidationIssue) ErrorResponse {
	if issues == nil {
		issues = []ValidationIssue{}
	}
	raw, _ := json.Marshal(issues)
	return ErrorResponse{Detail: raw}
}
