// Package evaluator executes a token sequence on an operand stack.
//
// Evaluation is strictly token-by-token: no lookahead, no branching, no
// jumps. Control-flow keywords (IF, THEN, ELSE, ENDIF) tokenize but do not
// alter evaluation order; they record as recognized-but-unimplemented.
// Failures never halt a run: every token produces exactly one execution
// record, failed operators leave the stack unchanged, and all diagnostics
// are visible once the full sequence has been processed.
package evaluator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sentrydata/sentrydata"
	"github.com/sentrydata/sentrydata/tokenizer"
)

// Record is one audit-trail entry: a token, the human-readable action it
// caused, and the stack contents immediately afterwards. Records are
// append-only and never mutated once created.
type Record struct {
	Step   int // 1-based
	Token  tokenizer.Token
	Action string
	Stack  []Value // snapshot after the token was processed, bottom first
}

// Result is the outcome of one evaluation run.
type Result struct {
	ID          uuid.UUID
	Trace       []Record
	Diagnostics []sentrydata.Diagnostic
	Stack       []Value // final stack, bottom first
}

// Evaluator runs one token sequence against a single operand stack. One
// Evaluator serves exactly one run: construct a fresh instance per input so
// no state leaks between independent runs.
type Evaluator struct {
	stack []Value
	diags []sentrydata.Diagnostic
}

// New creates an Evaluator with an empty stack and no diagnostics.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate is a convenience wrapper around New().Run(tokens).
func Evaluate(tokens []tokenizer.Token) *Result {
	return New().Run(tokens)
}

// Run processes the tokens in input order and returns the execution trace,
// the runtime diagnostics and the final stack.
func (e *Evaluator) Run(tokens []tokenizer.Token) *Result {
	trace := make([]Record, 0, len(tokens))

	for i, token := range tokens {
		action := e.process(token)
		trace = append(trace, Record{
			Step:   i + 1,
			Token:  token,
			Action: action,
			Stack:  e.snapshot(),
		})
	}

	return &Result{
		ID:          uuid.New(),
		Trace:       trace,
		Diagnostics: e.diags,
		Stack:       e.snapshot(),
	}
}

// Stack returns the current operand stack, bottom first.
func (e *Evaluator) Stack() []Value {
	return e.snapshot()
}

// Diagnostics returns the runtime diagnostics accumulated so far.
func (e *Evaluator) Diagnostics() []sentrydata.Diagnostic {
	return e.diags
}

func (e *Evaluator) process(token tokenizer.Token) string {
	switch token.Type {
	case tokenizer.NUMBER:
		value := Number(token.Number)
		e.stack = append(e.stack, value)

		return "PUSH " + value.String()
	case tokenizer.STRING:
		value := Text(token.Value)
		e.stack = append(e.stack, value)

		return "PUSH " + value.String()
	case tokenizer.IDENTIFIER:
		e.stack = append(e.stack, Ident(token.Value))

		return "PUSH " + token.Value
	case tokenizer.KEYWORD:
		switch token.Value {
		case "AND", "OR":
			return e.binary(token)
		case "NOT":
			return e.negate(token)
		default:
			// Deliberate extension seam: the keyword is recognized but has
			// no effect on the stack.
			return fmt.Sprintf("KEYWORD %s (not implemented)", token.Value)
		}
	default:
		return e.binary(token)
	}
}

// binary applies a two-operand operator. a is the popped top, b the value
// beneath it; the result of `b op a` is pushed. On underflow, division by
// zero or type mismatch the stack is left exactly as it was, one runtime
// diagnostic is appended, and evaluation moves on.
func (e *Evaluator) binary(token tokenizer.Token) string {
	op := token.Value

	if len(e.stack) < 2 {
		e.fail(token, fmt.Errorf("%w: %s requires 2 operands", ErrStackUnderflow, op))

		return fmt.Sprintf("ERROR: stack underflow in %s", op)
	}

	a := e.stack[len(e.stack)-1]
	b := e.stack[len(e.stack)-2]

	result, err := apply(op, b, a)
	if err != nil {
		e.fail(token, err)

		return fmt.Sprintf("ERROR: %v", err)
	}

	e.stack = e.stack[:len(e.stack)-2]
	e.stack = append(e.stack, result)

	return fmt.Sprintf("%s: %s %s %s = %s", op, b, op, a, result)
}

func (e *Evaluator) negate(token tokenizer.Token) string {
	if len(e.stack) < 1 {
		e.fail(token, fmt.Errorf("%w: NOT requires 1 operand", ErrStackUnderflow))

		return "ERROR: stack underflow in NOT"
	}

	a := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	result := Bool(!a.Truthy())
	e.stack = append(e.stack, result)

	return fmt.Sprintf("NOT: !%s = %s", a, result)
}

func (e *Evaluator) fail(token tokenizer.Token, err error) {
	e.diags = append(e.diags, sentrydata.Diagnostic{
		Line:     token.Position.Line,
		Category: sentrydata.RUNTIME,
		Err:      err,
	})
}

// snapshot copies the stack so trace records stay immutable while the live
// stack keeps changing.
func (e *Evaluator) snapshot() []Value {
	snapshot := make([]Value, len(e.stack))
	copy(snapshot, e.stack)

	return snapshot
}
