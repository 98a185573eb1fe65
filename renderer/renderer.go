// Package renderer turns rebalancing plans and portfolios into markdown
// reports suitable for a terminal renderer or a plain pager.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/rebalance"
)

// PlanMarkdown renders the rebalancing plan as a markdown table, one row per
// position in portfolio order, followed by the spend summary.
func PlanMarkdown(plan *rebalance.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalancing Plan\n\n")
	fmt.Fprintln(&b, "| Symbol | Price | Shares | Buy | Cost | Goal | Rebalanced |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")

	total := rebalance.M(0, plan.Budget.Currency())
	for _, pos := range plan.Positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s | %s |\n",
			pos.Symbol,
			pos.Price,
			pos.Shares,
			pos.SharesToBuy,
			pos.Cost,
			pos.GoalRatio.Percent(),
			pos.PostTradeRatio,
		)
		total = total.Add(pos.PostTradeValue)
	}

	fmt.Fprintf(&b, "\nPost-trade value: **%s**\n\n", total)
	fmt.Fprintf(&b, "Spend: **%s** of %s, residual cash: %s\n", plan.Cost, plan.Budget, plan.Residual())
	return b.String()
}

// PortfolioMarkdown renders the current holdings with their current
// allocation next to the goal one.
func PortfolioMarkdown(p rebalance.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")
	fmt.Fprintln(&b, "| Symbol | Price | Shares | Value | Goal | Current |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")

	total := p.Value()
	for _, h := range p {
		current := "-"
		if total.IsPositive() {
			current = h.Value().RatioOf(total).String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			h.Symbol,
			h.Price,
			h.Shares,
			h.Value(),
			h.GoalRatio.Percent(),
			current,
		)
	}

	fmt.Fprintf(&b, "\nTotal value: **%s**\n", total)
	return b.String()
}
