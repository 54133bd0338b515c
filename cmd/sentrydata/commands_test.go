package main

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/sentrydata/sentrydata"
	"github.com/sentrydata/sentrydata/evaluator"
)

func TestRunSourceCleanInput(t *testing.T) {
	r := runSource("3 4 +")

	assert.Equal(t, 0, r.diags.Len())
	assert.Equal(t, 3, len(r.tokens))
	assert.Equal(t, []evaluator.Value{evaluator.Number(7)}, r.result.Stack)
}

func TestRunSourceMergesPhaseDiagnostics(t *testing.T) {
	// '@' fails lexing; the lone '+' then underflows at evaluation. Lexical
	// diagnostics must come before runtime ones.
	r := runSource("@ 1 +")

	assert.Equal(t, 2, r.diags.Len())

	all := r.diags.All()
	assert.Equal(t, sentrydata.LEXICAL, all[0].Category)
	assert.Equal(t, sentrydata.RUNTIME, all[1].Category)
}

func TestRunSourceFreshStatePerCall(t *testing.T) {
	first := runSource("3")
	second := runSource("4")

	assert.Equal(t, []evaluator.Value{evaluator.Number(3)}, first.result.Stack)
	assert.Equal(t, []evaluator.Value{evaluator.Number(4)}, second.result.Stack)
}

func TestFormatStack(t *testing.T) {
	stack := []evaluator.Value{
		evaluator.Number(10),
		evaluator.Text("Juan"),
		evaluator.Bool(false),
	}

	assert.Equal(t, `[10, "Juan", false]`, formatStack(stack))
	assert.Equal(t, "[]", formatStack(nil))
}
