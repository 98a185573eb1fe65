package rebalance

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// this file contains functions to handle the holdings import/export format.
// It should remain human readable, single file and be easy to keep in git.

// holdingsHeader is the expected CSV header of a holdings file.
var holdingsHeader = []string{"symbol", "price", "shares", "goal_ratio"}

// planHeader is the CSV header of a plan snapshot: the holdings columns
// augmented with the computed purchase counts and post-trade ratios.
var planHeader = []string{"symbol", "price", "shares", "goal_ratio", "reinvest_shares", "rebalanced_ratio"}

// DecodeHoldings reads a portfolio from 'r' in the holdings format.
//
// The format is a CSV file with the header "symbol,price,shares,goal_ratio",
// one holding per row: the stock symbol, its market price in 'currency',
// the whole number of shares owned, and the desired fraction of the
// portfolio value in [0,1]. Cells are trimmed, blank lines are skipped.
func DecodeHoldings(r io.Reader, currency string) (Portfolio, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var p Portfolio
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read holdings row: %w", err)
		}
		h, err := decodeHolding(record, currency)
		if err != nil {
			return nil, err
		}
		p = append(p, h)
	}
	// Structural rules only: a goal-ratio sum away from 1 is degraded but
	// plannable input, Check reports it separately.
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func checkHeader(header []string) error {
	if len(header) != len(holdingsHeader) {
		return fmt.Errorf("%w: holdings header has %d columns, want %d", ErrInvalidInput, len(header), len(holdingsHeader))
	}
	for i, name := range holdingsHeader {
		if strings.TrimSpace(header[i]) != name {
			return fmt.Errorf("%w: holdings column %d is %q, want %q", ErrInvalidInput, i+1, header[i], name)
		}
	}
	return nil
}

func decodeHolding(record []string, currency string) (Holding, error) {
	if len(record) != len(holdingsHeader) {
		return Holding{}, fmt.Errorf("%w: row %v has %d columns, want %d", ErrInvalidInput, record, len(record), len(holdingsHeader))
	}
	symbol := strings.TrimSpace(record[0])

	price, err := ParseMoney(strings.TrimSpace(record[1]), currency)
	if err != nil {
		return Holding{}, fmt.Errorf("%w: holding %q: %v", ErrInvalidInput, symbol, err)
	}
	shares, err := ParseQuantity(strings.TrimSpace(record[2]))
	if err != nil {
		return Holding{}, fmt.Errorf("%w: holding %q: %v", ErrInvalidInput, symbol, err)
	}
	ratio, err := ParseQuantity(strings.TrimSpace(record[3]))
	if err != nil {
		return Holding{}, fmt.Errorf("%w: holding %q: %v", ErrInvalidInput, symbol, err)
	}

	h := Holding{Symbol: symbol, Price: price, Shares: shares, GoalRatio: ratio}
	return h, h.validate()
}

// EncodePlan writes the plan to 'w' in the snapshot format.
//
// The format is the holdings CSV augmented with two columns:
// "reinvest_shares", the whole number of shares to buy, and
// "rebalanced_ratio", the post-trade allocation fraction with 4 decimals.
func EncodePlan(w io.Writer, plan *Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(planHeader); err != nil {
		return fmt.Errorf("cannot write plan header: %w", err)
	}
	for _, pos := range plan.Positions {
		record := []string{
			pos.Symbol,
			pos.Price.value.String(),
			pos.Shares.String(),
			pos.GoalRatio.String(),
			fmt.Sprintf("%d", pos.SharesToBuy),
			fmt.Sprintf("%.4f", pos.PostTradeRatio.Fraction()),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write plan row for %q: %w", pos.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SavePlan persists the plan as a timestamped snapshot file in 'dir' and
// returns the path it wrote.
func SavePlan(dir string, plan *Plan) (string, error) {
	timestamp := time.Now().Format("2006-01-02_15.04.05")
	path := filepath.Join(dir, fmt.Sprintf("rebalanced_%s.csv", timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create snapshot %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodePlan(f, plan); err != nil {
		return "", fmt.Errorf("cannot write snapshot %q: %w", path, err)
	}
	return path, nil
}

// LoadPortfolio reads a portfolio from the holdings file at 'path'.
func LoadPortfolio(path, currency string) (Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings file %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodeHoldings(f, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot decode holdings file %q: %w", path, err)
	}
	return p, nil
}
