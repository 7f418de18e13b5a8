package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_Message(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string detail", body: `{"detail":"Invalid or expired token"}`, want: "Invalid or expired token"},
		{name: "validation list", body: `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address","type":"value_error"}]}`, want: "value is not a valid email address"},
		{name: "integer in loc", body: `{"detail":[{"loc":["body",0,"star_rating"],"msg":"Input should be less than or equal to 5","type":"less_than_equal"}]}`, want: "Input should be less than or equal to 5"},
		{name: "first issue without msg skipped", body: `{"detail":[{"loc":[],"msg":"","type":"x"},{"loc":["query"],"msg":"second","type":"y"}]}`, want: "second"},
		{name: "no detail", body: `{}`, want: ""},
		{name: "object detail", body: `{"detail":{"code":1}}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.want, resp.Message())
		})
	}
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse(ValidationIssue{Loc: []any{"body", "name"}, Msg: "Field required", Type: "missing"})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":[{"loc":["body","name"],"msg":"Field required","type":"missing"}]}`, string(raw))

	assert.JSONEq(t, `{"detail":[]}`, mustJSON(t, NewValidationErrorResponse()))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}
