package evaluator

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrTypeMismatch   = errors.New("type mismatch")
)

// apply computes `b op a` for every binary operator, where a was the top of
// the stack and b the value beneath it. The operand order matters for the
// non-commutative operators.
//
// The coercion rules are fixed rather than host-defined:
//   - `+` adds two numbers or concatenates two textual values.
//   - `-`, `*`, `/` require two numbers; `/` rejects a zero divisor.
//   - `==` and `!=` are total: values of different kinds are simply unequal.
//   - `<`, `>`, `<=`, `>=` order two numbers numerically or two textual
//     values lexicographically.
//   - AND and OR coerce both operands through Truthy.
//
// Anything else is a type-mismatch error; the caller reports it as a
// runtime diagnostic and leaves the stack untouched.
func apply(op string, b, a Value) (Value, error) {
	switch op {
	case "+":
		if b.Kind == KindNumber && a.Kind == KindNumber {
			return Number(b.Number + a.Number), nil
		}
		if b.textual() && a.textual() {
			return Text(b.Text + a.Text), nil
		}
		return Value{}, mismatch(op, b, a)
	case "-", "*", "/":
		if b.Kind != KindNumber || a.Kind != KindNumber {
			return Value{}, mismatch(op, b, a)
		}
		switch op {
		case "-":
			return Number(b.Number - a.Number), nil
		case "*":
			return Number(b.Number * a.Number), nil
		default:
			if a.Number == 0 {
				return Value{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, b, a)
			}
			return Number(b.Number / a.Number), nil
		}
	case "==":
		return Bool(equal(b, a)), nil
	case "!=":
		return Bool(!equal(b, a)), nil
	case "<", ">", "<=", ">=":
		return compare(op, b, a)
	case "AND":
		return Bool(b.Truthy() && a.Truthy()), nil
	case "OR":
		return Bool(b.Truthy() || a.Truthy()), nil
	}

	return Value{}, fmt.Errorf("unsupported operator %q", op)
}

// equal is total: same-kind values compare payloads, textual kinds compare
// as text, and values of different kinds are unequal without complaint.
func equal(b, a Value) bool {
	if b.textual() && a.textual() {
		return b.Text == a.Text
	}
	if b.Kind != a.Kind {
		return false
	}

	switch b.Kind {
	case KindNumber:
		return b.Number == a.Number
	case KindBool:
		return b.Bool == a.Bool
	default:
		return b.Text == a.Text
	}
}

func compare(op string, b, a Value) (Value, error) {
	var less, same bool

	switch {
	case b.Kind == KindNumber && a.Kind == KindNumber:
		less, same = b.Number < a.Number, b.Number == a.Number
	case b.textual() && a.textual():
		less, same = b.Text < a.Text, b.Text == a.Text
	default:
		return Value{}, mismatch(op, b, a)
	}

	switch op {
	case "<":
		return Bool(less), nil
	case ">":
		return Bool(!less && !same), nil
	case "<=":
		return Bool(less || same), nil
	default: // ">="
		return Bool(!less), nil
	}
}

func mismatch(op string, b, a Value) error {
	return fmt.Errorf("%w: %s %s %s", ErrTypeMismatch, b.Kind, op, a.Kind)
}
