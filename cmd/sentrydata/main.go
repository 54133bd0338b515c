package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/sentrydata/sentrydata"
)

var version = "0.3.0"

// CLI represents the command tree
var CLI struct {
	Config  string `help:"Path to the configuration file" short:"c" default:"sentrydata.yaml"`
	Verbose bool   `help:"Enable verbose output" short:"v"`
	Quiet   bool   `help:"Suppress banners and phase headers" short:"q"`
	NoColor bool   `help:"Disable colored output"`

	Repl    ReplCmd    `cmd:"" default:"1" help:"Start the interactive prompt"`
	Run     RunCmd     `cmd:"" help:"Execute a rule script"`
	Tokens  TokensCmd  `cmd:"" help:"Print the token stream of a script without executing it"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// Context represents the global context for commands
type Context struct {
	Config  *sentrydata.Config
	Verbose bool
	Quiet   bool
}

func main() {
	ctx := kong.Parse(&CLI)

	config, err := sentrydata.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if CLI.NoColor || config.NoColor {
		color.NoColor = true
	}

	appCtx := &Context{
		Config:  config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err = ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
