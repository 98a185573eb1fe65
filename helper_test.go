package rebalance

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// hold is a helper for test to create a holding from consts.
func hold(symbol string, price float64, shares int64, ratio float64) Holding {
	return Holding{Symbol: symbol, Price: EUR(price), Shares: Q(shares), GoalRatio: Q(ratio)}
}
