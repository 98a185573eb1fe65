package rebalance

// Position is one holding augmented with the purchase the plan proposes and
// the allocation it will end up with once the purchase is executed.
type Position struct {
	Holding
	SharesToBuy    int64
	Cost           Money // SharesToBuy at the holding's price
	PostTradeValue Money
	PostTradeRatio Percent
}

// Plan is the outcome of rebalancing a portfolio with a cash investment:
// one position per holding, in portfolio order.
type Plan struct {
	Positions []Position
	Budget    Money // the cash amount available for purchases
	Cost      Money // what the plan actually spends, Cost <= Budget
}

// Residual returns the cash left over after executing the plan.
func (pl *Plan) Residual() Money { return pl.Budget.Sub(pl.Cost) }

// Rebalance computes the whole-share purchase plan for investing
// 'investment' into the portfolio: theoretical targets first, then the
// best-rounding selection, then post-trade values and ratios.
//
// The call is a pure function of its inputs; the portfolio is not modified.
func (p Portfolio) Rebalance(investment Money) (*Plan, error) {
	targets, err := p.Targets(investment)
	if err != nil {
		return nil, err
	}

	prices := make([]Money, len(p))
	for i, h := range p {
		prices[i] = h.Price
	}
	shares, err := BestRoundings(targets, prices, investment)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Positions: make([]Position, len(p)),
		Budget:    investment,
		Cost:      M(0, p.Currency()),
	}
	total := M(0, p.Currency())
	for i, h := range p {
		cost := h.Price.Mul(Q(shares[i]))
		value := h.Price.Mul(h.Shares.Add(Q(shares[i])))
		plan.Positions[i] = Position{
			Holding:        h,
			SharesToBuy:    shares[i],
			Cost:           cost,
			PostTradeValue: value,
		}
		plan.Cost = plan.Cost.Add(cost)
		total = total.Add(value)
	}
	// An all-zero portfolio with nothing to buy has no allocation to report.
	if total.IsPositive() {
		for i := range plan.Positions {
			plan.Positions[i].PostTradeRatio = plan.Positions[i].PostTradeValue.RatioOf(total)
		}
	}
	return plan, nil
}
