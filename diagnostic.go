package sentrydata

import "fmt"

// Category classifies a Diagnostic by the phase that discovered the problem.
type Category int

const (
	// LEXICAL marks malformed or unrecognized source text found while scanning.
	LEXICAL Category = iota
	// SYNTACTIC is reserved for a future parsing phase. No current code emits it.
	SYNTACTIC
	// SEMANTIC is reserved for a future analysis phase (variable binding, type
	// checking). No current code emits it.
	SEMANTIC
	// RUNTIME marks failures raised while executing tokens on the operand stack.
	RUNTIME
)

// String returns the string representation of Category
func (c Category) String() string {
	switch c {
	case LEXICAL:
		return "LEXICAL"
	case SYNTACTIC:
		return "SYNTACTIC"
	case SEMANTIC:
		return "SEMANTIC"
	case RUNTIME:
		return "RUNTIME"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic is one non-fatal problem report. Diagnostics never abort a run;
// they are collected and surfaced after the phase that produced them finishes.
type Diagnostic struct {
	Line     int
	Category Category
	Err      error
}

// Message returns the human-readable description of the diagnostic.
func (d Diagnostic) Message() string {
	if d.Err == nil {
		return ""
	}
	return d.Err.Error()
}

// String returns the string representation of Diagnostic
func (d Diagnostic) String() string {
	return fmt.Sprintf("L%d [%s] %s", d.Line, d.Category, d.Message())
}

// Collector accumulates diagnostics across the lexing and evaluation phases of
// a single run. It is append-only: insertion order is preserved, nothing is
// deduplicated or filtered, and entries are never removed.
type Collector struct {
	diags []Diagnostic
}

// Append adds diagnostics to the end of the list.
func (c *Collector) Append(diags ...Diagnostic) {
	c.diags = append(c.diags, diags...)
}

// All returns every collected diagnostic in insertion order.
func (c *Collector) All() []Diagnostic {
	return c.diags
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.diags)
}
