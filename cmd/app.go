// Package cmd implements the CLI application to rebalance a portfolio.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&planCmd{}, "rebalancing")

	c.Register(&showCmd{}, "portfolio")
	c.Register(&checkCmd{}, "portfolio")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", "EUR", "Currency the holdings are priced in")

// LoadPortfolio loads the holdings file using the app currency.
func LoadPortfolio(path string) (rebalance.Portfolio, error) {
	return rebalance.LoadPortfolio(path, *currency)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// markdown when the terminal renderer is not usable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
