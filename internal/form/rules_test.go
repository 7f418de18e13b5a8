package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule_Check(t *testing.T) {
	email := Pattern(`^[^\s@]+@[^\s@]+\.[^\s@]+$`, "bad email")

	tests := []struct {
		name string
		rule Rule
		v    Value
		want string
	}{
		{"required empty", Required("req"), TextValue(""), "req"},
		{"required whitespace", Required("req"), TextValue("   \t"), "req"},
		{"required ok", Required("req"), TextValue(" Ann "), ""},
		{"required ignores bool", Required("req"), BoolValue(false), ""},

		{"pattern skips empty", email, TextValue(""), ""},
		{"pattern ok", email, TextValue("a@b.co"), ""},
		{"pattern no at", email, TextValue("ab.co"), "bad email"},
		{"pattern no tld", email, TextValue("a@b"), "bad email"},
		{"pattern empty tld", email, TextValue("a@b."), "bad email"},
		{"pattern trims", email, TextValue("  a@b.co "), ""},

		{"length too short", Length(10, 0, "short"), TextValue("ok"), "short"},
		{"length exactly min", Length(10, 0, "short"), TextValue("0123456789"), ""},
		{"length counts runes", Length(0, 3, "long"), TextValue("äöü"), ""},
		{"length too long", Length(0, 3, "long"), TextValue("abcd"), "long"},
		{"length trims before counting", Length(3, 0, "short"), TextValue("  ab  "), "short"},

		{"range ok", Range(1, 5, "range"), IntValue(3), ""},
		{"range low", Range(1, 5, "range"), IntValue(0), "range"},
		{"range high", Range(1, 5, "range"), IntValue(6), "range"},
		{"range wrong kind", Range(1, 5, "range"), TextValue("3"), "range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Check(tt.v))
		})
	}
}

func TestCheckAll_FirstFailureWins(t *testing.T) {
	rules := []Rule{
		Required("required"),
		Length(10, 0, "too short"),
	}

	assert.Equal(t, "required", checkAll(rules, TextValue("")))
	assert.Equal(t, "too short", checkAll(rules, TextValue("ok")))
	assert.Empty(t, checkAll(rules, TextValue("long enough text")))
	assert.Empty(t, checkAll(nil, TextValue("")))
}

func TestValue_Accessors(t *testing.T) {
	assert.Equal(t, KindText, Value{}.Kind())
	assert.Equal(t, "", Value{}.Text())

	b := BoolValue(true)
	assert.True(t, b.Bool())
	assert.Equal(t, "true", b.Text())
	assert.Equal(t, 0, b.Int())

	n := IntValue(4)
	assert.Equal(t, 4, n.Int())
	assert.Equal(t, "4", n.Text())
	assert.False(t, n.Bool())

	assert.Equal(t, "int", KindInt.String())
}
