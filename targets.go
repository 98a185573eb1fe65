package rebalance

import "fmt"

// Targets computes the theoretical (fractional) number of shares to buy for
// each holding so that the portfolio, after investing 'investment', exactly
// matches the goal ratios. One entry per holding, in portfolio order.
//
// The arithmetic is exact: for each holding, the target value is its goal
// ratio applied to the post-investment total, and the theoretical share
// delta is the value gap divided by its price. A negative entry means the
// holding is currently over-allocated; the ideal trade would be a sale,
// which the rounding search later clamps to zero.
func (p Portfolio) Targets(investment Money) ([]Quantity, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if investment.IsNegative() {
		return nil, fmt.Errorf("%w: negative investment %s", ErrInvalidInput, investment)
	}
	if c := investment.Currency(); c != "" && c != p.Currency() {
		return nil, fmt.Errorf("%w: investment in %s but portfolio is in %s", ErrInvalidInput, c, p.Currency())
	}

	targetTotal := p.Value().Add(investment)

	targets := make([]Quantity, len(p))
	for i, h := range p {
		targetValue := targetTotal.Mul(h.GoalRatio)
		delta := targetValue.Sub(h.Value())
		targets[i] = delta.DivPrice(h.Price)
	}
	return targets, nil
}
