package evaluator

import "strconv"

// Kind is the tag in the Value tagged union.
type Kind int

const (
	KindNumber Kind = iota
	KindText
	KindBool
	KindIdent // an identifier name, pushed unresolved; there is no variable environment
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "NUMBER"
	case KindText:
		return "TEXT"
	case KindBool:
		return "BOOL"
	case KindIdent:
		return "IDENTIFIER"
	default:
		return "UNKNOWN"
	}
}

// Value is one operand on the evaluation stack.
type Value struct {
	Kind   Kind
	Number float64
	Text   string // payload for KindText and KindIdent
	Bool   bool
}

// Number creates a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// Text creates a text value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Ident creates an unresolved identifier-name value.
func Ident(name string) Value {
	return Value{Kind: KindIdent, Text: name}
}

// Truthy maps the value to a boolean: zero, empty text and false are falsy,
// everything else is truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNumber:
		return v.Number != 0
	case KindBool:
		return v.Bool
	default:
		return v.Text != ""
	}
}

// textual reports whether the value carries text. Text literals and
// identifier names interoperate for concatenation and comparison.
func (v Value) textual() bool {
	return v.Kind == KindText || v.Kind == KindIdent
}

// String returns the string representation of Value
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.Text)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Text
	}
}
