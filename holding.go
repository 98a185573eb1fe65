package rebalance

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a malformed holding or investment amount. It is
// raised before any search begins.
var ErrInvalidInput = errors.New("invalid input")

// Holding is one stock position: what it trades at, how much of it is owned,
// and what fraction of the portfolio it should represent.
type Holding struct {
	Symbol    string
	Price     Money
	Shares    Quantity // whole shares currently owned
	GoalRatio Quantity // desired fraction of total portfolio value, in [0,1]
}

// Value returns the current market value of the holding.
func (h Holding) Value() Money { return h.Price.Mul(h.Shares) }

// validate checks the holding in isolation.
func (h Holding) validate() error {
	if h.Symbol == "" {
		return fmt.Errorf("%w: holding without a symbol", ErrInvalidInput)
	}
	if !h.Price.IsPositive() {
		return fmt.Errorf("%w: holding %q has non-positive price %s", ErrInvalidInput, h.Symbol, h.Price)
	}
	if h.Shares.IsNegative() {
		return fmt.Errorf("%w: holding %q has negative share count %s", ErrInvalidInput, h.Symbol, h.Shares)
	}
	if !h.Shares.IsInteger() {
		return fmt.Errorf("%w: holding %q has fractional share count %s", ErrInvalidInput, h.Symbol, h.Shares)
	}
	if h.GoalRatio.IsNegative() || h.GoalRatio.GreaterThan(Q(1)) {
		return fmt.Errorf("%w: holding %q has goal ratio %s outside [0,1]", ErrInvalidInput, h.Symbol, h.GoalRatio)
	}
	return nil
}

// Portfolio is an ordered sequence of holdings, all priced in the same
// currency. The order only drives deterministic output, not correctness.
type Portfolio []Holding

// Value returns the current total market value of the portfolio.
func (p Portfolio) Value() Money {
	var total Money
	for _, h := range p {
		total = total.Add(h.Value())
	}
	return total
}

// Currency returns the portfolio's currency, or "" for an empty portfolio.
func (p Portfolio) Currency() string {
	if len(p) == 0 {
		return ""
	}
	return p[0].Price.Currency()
}

// validate checks the structural rules the core depends on: a non-empty
// portfolio of well-formed holdings with unique symbols, all in a single
// currency. It deliberately does not check that goal ratios sum to 1, see
// Check.
func (p Portfolio) validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty portfolio", ErrInvalidInput)
	}
	currency := p[0].Price.Currency()
	seen := make(map[string]bool, len(p))
	for _, h := range p {
		if err := h.validate(); err != nil {
			return err
		}
		if h.Price.Currency() != currency {
			return fmt.Errorf("%w: holding %q is priced in %s, portfolio is in %s",
				ErrInvalidInput, h.Symbol, h.Price.Currency(), currency)
		}
		if seen[h.Symbol] {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidInput, h.Symbol)
		}
		seen[h.Symbol] = true
	}
	return nil
}

// goalRatioTolerance is how far the goal-ratio sum may drift from 1 before
// Check flags the portfolio.
const goalRatioTolerance = 1e-4

// Check validates the portfolio for planning: the structural rules plus
// goal ratios summing to 1 within tolerance. A portfolio that fails only
// the ratio-sum check still produces a plan, it just will not converge to
// a clean 100% allocation.
func (p Portfolio) Check() error {
	if err := p.validate(); err != nil {
		return err
	}
	sum := Q(0)
	for _, h := range p {
		sum = sum.Add(h.GoalRatio)
	}
	drift := sum.Sub(Q(1))
	if drift.IsNegative() {
		drift = Q(0).Sub(drift)
	}
	if drift.GreaterThan(Q(goalRatioTolerance)) {
		return fmt.Errorf("%w: goal ratios sum to %s instead of 1", ErrInvalidInput, sum)
	}
	return nil
}
