package sentrydata

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "LEXICAL", LEXICAL.String())
	assert.Equal(t, "SYNTACTIC", SYNTACTIC.String())
	assert.Equal(t, "SEMANTIC", SEMANTIC.String())
	assert.Equal(t, "RUNTIME", RUNTIME.String())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Line: 3, Category: LEXICAL, Err: errors.New("unterminated string")}

	assert.Equal(t, "L3 [LEXICAL] unterminated string", d.String())
}

func TestCollectorPreservesOrder(t *testing.T) {
	c := &Collector{}

	first := Diagnostic{Line: 1, Category: LEXICAL, Err: errors.New("first")}
	second := Diagnostic{Line: 1, Category: RUNTIME, Err: errors.New("second")}
	third := Diagnostic{Line: 2, Category: RUNTIME, Err: errors.New("second")}

	c.Append(first)
	c.Append(second, third)

	// Append-only, no deduplication even for identical messages.
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []Diagnostic{first, second, third}, c.All())
}
