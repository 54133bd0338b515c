package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sentrydata/sentrydata"
	"github.com/sentrydata/sentrydata/evaluator"
	"github.com/sentrydata/sentrydata/tokenizer"
)

// ErrScriptFailed is returned when a script run produced diagnostics.
var ErrScriptFailed = errors.New("script completed with diagnostics")

// report bundles everything one pipeline pass produced.
type report struct {
	tokens []tokenizer.Token
	result *evaluator.Result
	diags  *sentrydata.Collector
}

// runSource pushes one source text through a fresh pipeline: lexing first,
// then evaluation, diagnostics from both phases merged in order.
func runSource(source string) *report {
	collector := &sentrydata.Collector{}

	tokens, lexDiags := tokenizer.Tokenize(source)
	collector.Append(lexDiags...)

	result := evaluator.Evaluate(tokens)
	collector.Append(result.Diagnostics...)

	return &report{tokens: tokens, result: result, diags: collector}
}

// ReplCmd represents the repl command
type ReplCmd struct{}

// Run executes the repl command: one line of source per prompt, a fresh
// pipeline per line.
func (cmd *ReplCmd) Run(ctx *Context) error {
	f := newFormatter(ctx)
	f.banner(version)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(ctx.Config.Prompt)

		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := scanner.Text()

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "exit", "quit", "salir":
			return nil
		}

		f.printReport(runSource(line))
	}
}

// RunCmd represents the run command
type RunCmd struct {
	Script string `arg:"" help:"Rule script to execute" type:"path"`
}

// Run executes the run command
func (cmd *RunCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(cmd.Script)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	f := newFormatter(ctx)

	r := runSource(string(data))
	f.printReport(r)

	if r.diags.Len() > 0 {
		return fmt.Errorf("%w: %d diagnostic(s)", ErrScriptFailed, r.diags.Len())
	}

	return nil
}

// TokensCmd represents the tokens command
type TokensCmd struct {
	Script string `arg:"" help:"Rule script to tokenize" type:"path"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(cmd.Script)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	tokens, lexDiags := tokenizer.Tokenize(string(data))

	collector := &sentrydata.Collector{}
	collector.Append(lexDiags...)

	f := newFormatter(ctx)
	f.header("Tokens")
	f.printTokens(tokens)
	f.printDiagnostics(collector)

	if collector.Len() > 0 {
		return fmt.Errorf("%w: %d diagnostic(s)", ErrScriptFailed, collector.Len())
	}

	return nil
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Printf("sentrydata version %s\n", version)

	return nil
}
