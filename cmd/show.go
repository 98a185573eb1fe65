package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	quiet bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the current portfolio and its allocation" }
func (*showCmd) Usage() string {
	return `rebal show [-q] <holdings.csv>

  Displays the holdings with their market value and how the current
  allocation compares to the goal ratios.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quiet, "q", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected a <holdings.csv> argument\n")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.PortfolioMarkdown(p)
	if c.quiet {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
