package evaluator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected bool
	}{
		{"zero", Number(0), false},
		{"nonzero", Number(3), true},
		{"negative", Number(-1), true},
		{"empty text", Text(""), false},
		{"text", Text("x"), true},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"identifier", Ident("nombre"), true},
		{"empty identifier", Ident(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Truthy())
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Number(7), "7"},
		{Number(7.5), "7.5"},
		{Number(-0.25), "-0.25"},
		{Text("Juan"), `"Juan"`},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Ident("nombre"), "nombre"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NUMBER", KindNumber.String())
	assert.Equal(t, "TEXT", KindText.String())
	assert.Equal(t, "BOOL", KindBool.String())
	assert.Equal(t, "IDENTIFIER", KindIdent.String())
}
