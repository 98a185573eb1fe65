package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a holdings file" }
func (*checkCmd) Usage() string {
	return `rebal check <holdings.csv>

  Validates the holdings file: well-formed rows, positive prices, whole
  non-negative share counts, unique symbols, and goal ratios summing to 1.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected a <holdings.csv> argument\n")
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %d holdings, total value %s, goal ratios sum to 1\n", f.Arg(0), len(p), p.Value())
	return subcommands.ExitSuccess
}
