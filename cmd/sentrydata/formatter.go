package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sentrydata/sentrydata"
	"github.com/sentrydata/sentrydata/evaluator"
	"github.com/sentrydata/sentrydata/tokenizer"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
	faintColor  = color.New(color.Faint)
)

// formatter renders pipeline results on the console.
type formatter struct {
	ctx *Context
}

func newFormatter(ctx *Context) *formatter {
	return &formatter{ctx: ctx}
}

func (f *formatter) banner(version string) {
	if f.ctx.Quiet {
		return
	}

	headerColor.Printf("SentryData %s — RPN shell for data-cleaning rules\n", version)
	fmt.Println("Examples:")
	fmt.Println("  3 4 +                 result: 7")
	fmt.Println("  10 5 - 2 *            result: 10")
	fmt.Println("  1 0 AND               result: false")
	fmt.Println("Type \"exit\" to leave.")
}

func (f *formatter) header(title string) {
	if f.ctx.Quiet {
		return
	}

	headerColor.Printf("── %s ──\n", title)
}

func (f *formatter) printReport(r *report) {
	f.header("Tokens")
	f.printTokens(r.tokens)

	if f.ctx.Config.Trace {
		f.header("Execution")
		f.printTrace(r.result.Trace)
	}

	f.header("Stack")
	f.printStack(r.result.Stack)

	f.printDiagnostics(r.diags)

	if f.ctx.Verbose {
		faintColor.Printf("run %s\n", r.result.ID)
	}
}

func (f *formatter) printTokens(tokens []tokenizer.Token) {
	if len(tokens) == 0 {
		faintColor.Println("no tokens")
		return
	}

	for i, token := range tokens {
		fmt.Printf("%02d. %-12s %-16q L%d:C%d\n",
			i+1, token.Type, token.Value, token.Position.Line, token.Position.Column)
	}
}

func (f *formatter) printTrace(trace []evaluator.Record) {
	for _, record := range trace {
		action := record.Action
		if strings.HasPrefix(action, "ERROR:") {
			action = errorColor.Sprint(action)
		}
		fmt.Printf("P%02d: %-42s → %s\n", record.Step, action, formatStack(record.Stack))
	}
}

func (f *formatter) printStack(stack []evaluator.Value) {
	if len(stack) == 0 {
		faintColor.Println("stack empty")
		return
	}

	fmt.Println(formatStack(stack))

	if len(stack) == 1 {
		okColor.Printf("RESULT: %s\n", stack[0])
	}
}

func (f *formatter) printDiagnostics(diags *sentrydata.Collector) {
	f.header("Diagnostics")

	if diags.Len() == 0 {
		okColor.Println("no diagnostics")
		return
	}

	for _, d := range diags.All() {
		errorColor.Println(d.String())
	}
}

func formatStack(stack []evaluator.Value) string {
	parts := make([]string, len(stack))
	for i, v := range stack {
		parts[i] = v.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
