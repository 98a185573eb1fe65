// Package rebalance computes integer-share rebalancing plans for a personal
// stock portfolio. It is designed to be local-first and auditable: the input
// is a plain CSV of holdings, the output is a plan the user can review before
// placing any order.
//
// The core functionalities include:
//   - Target Calculation: deriving the real-valued (fractional) share count
//     each holding would need to exactly hit its goal ratio after investing
//     a given cash amount.
//   - Rounding Search: reconciling those fractional targets with whole-share
//     purchases by enumerating every floor/ceiling rounding combination and
//     keeping the one that spends the most without exceeding the budget.
//   - Plan Assembly: augmenting the holdings with the selected purchase
//     counts and the resulting post-trade allocation ratios.
//   - Data Persistence: loading holdings from CSV and saving the computed
//     plan as a timestamped snapshot, human-readable and diff-friendly.
//
// All arithmetic uses exact decimals, so a plan's total cost is compared
// against the budget without binary floating-point drift.
//
// This package serves as the foundational logic for the `rebal` command-line
// tool.
package rebalance
