package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	outputDir string
	dryRun    bool
	quiet     bool
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "compute a whole-share rebalancing plan" }
func (*planCmd) Usage() string {
	return `rebal plan [-o <dir>] [-n] [-q] <holdings.csv> <amount>

  Computes how many whole shares of each holding to buy so that the total
  spend stays within <amount> while getting as close to it as possible, and
  the resulting allocation approximates the goal ratios. Renders the plan
  and saves it as a timestamped snapshot in the output directory.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", ".", "Directory for the snapshot file")
	f.BoolVar(&c.dryRun, "n", false, "Compute and render the plan without saving a snapshot")
	f.BoolVar(&c.quiet, "q", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: expected <holdings.csv> and <amount> arguments\n")
		return subcommands.ExitUsageError
	}

	investment, err := rebalance.ParseMoney(f.Arg(1), *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing investment amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := LoadPortfolio(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.Check(); err != nil {
		// Degraded but plannable: the allocation will not converge to 100%.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	plan, err := p.Rebalance(investment)
	if err != nil {
		if errors.Is(err, rebalance.ErrTooManyHoldings) {
			fmt.Fprintf(os.Stderr, "Error: %v (split the portfolio or reduce the holdings)\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error computing plan for %q: %v\n", f.Arg(0), err)
		}
		return subcommands.ExitFailure
	}

	md := renderer.PlanMarkdown(plan)
	if c.quiet {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}

	if c.dryRun {
		return subcommands.ExitSuccess
	}
	path, err := rebalance.SavePlan(c.outputDir, plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved plan to %s\n", path)
	return subcommands.ExitSuccess
}
