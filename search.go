package rebalance

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrNoFeasibleRounding reports that every rounding combination, including
// the cheapest all-floor one, costs more than the budget. This can happen
// when an over-allocated holding clamps a negative target to zero while the
// budget is consumed by the other holdings.
var ErrNoFeasibleRounding = errors.New("no feasible rounding")

// ErrTooManyHoldings guards the exponential search space.
var ErrTooManyHoldings = errors.New("too many holdings")

// MaxHoldings is the largest portfolio the exhaustive search accepts. At 24
// holdings the search already visits about 16.7 million combinations.
const MaxHoldings = 24

// parallelHoldings is the portfolio size above which the combination index
// space is partitioned across CPUs.
const parallelHoldings = 16

// BestRoundings selects, for every holding, whether to round its theoretical
// share target down or up, so that the total cost of the whole-share
// purchases is the maximum value not exceeding 'budget'.
//
// Every combination of floor/ceil per holding is examined: bit i of the
// combination index selects ceiling (set) or floor (clear) for holding i.
// Rounded counts are clamped to zero, a negative target never becomes a
// sale. Among combinations of equal maximal cost the lowest index wins,
// which keeps the result deterministic, also under parallel partitioning.
//
// The returned slice holds the whole number of shares to buy per holding,
// in input order.
func BestRoundings(targets []Quantity, prices []Money, budget Money) ([]int64, error) {
	if len(targets) != len(prices) {
		return nil, fmt.Errorf("%w: %d targets for %d prices", ErrInvalidInput, len(targets), len(prices))
	}
	n := len(targets)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty portfolio", ErrInvalidInput)
	}
	if n > MaxHoldings {
		return nil, fmt.Errorf("%w: %d holdings, limit is %d", ErrTooManyHoldings, n, MaxHoldings)
	}

	// Per holding, the two candidate purchase counts and the marginal cost
	// of picking the ceiling over the floor. The cost of a combination is
	// then the all-floor base plus the extras of its set bits.
	floors := make([]int64, n)
	ceils := make([]int64, n)
	extras := make([]Money, n)
	base := M(0, budget.Currency())
	for i, t := range targets {
		floors[i] = clampShares(t.Floor())
		ceils[i] = clampShares(t.Ceil())
		floorCost := prices[i].Mul(Q(floors[i]))
		extras[i] = prices[i].Mul(Q(ceils[i])).Sub(floorCost)
		base = base.Add(floorCost)
	}

	// The all-floor combination is the cheapest one. If even that blows the
	// budget there is nothing to select.
	if base.GreaterThan(budget) {
		return nil, fmt.Errorf("%w: cheapest combination costs %s, budget is %s", ErrNoFeasibleRounding, base, budget)
	}

	var bestMask uint64
	if n > parallelHoldings {
		bestMask, _ = searchParallel(n, base, extras, budget)
	} else {
		bestMask, _ = searchRange(0, uint64(1)<<n, base, extras, budget)
	}

	shares := make([]int64, n)
	for i := range shares {
		if bestMask&(1<<i) != 0 {
			shares[i] = ceils[i]
		} else {
			shares[i] = floors[i]
		}
	}
	return shares, nil
}

// clampShares turns a whole quantity into a non-negative purchase count.
func clampShares(q Quantity) int64 {
	if q.IsNegative() {
		return 0
	}
	return q.IntPart()
}

// searchRange scans combination indices [lo, hi) and returns the feasible
// combination with the highest cost, lowest index on ties. The range is
// scanned in ascending order and only strictly better costs replace the
// current best, so the lowest winning index is retained for free.
func searchRange(lo, hi uint64, base Money, extras []Money, budget Money) (bestMask uint64, bestCost Money) {
	bestMask = lo
	bestCost = cost(lo, base, extras)
	if bestCost.GreaterThan(budget) {
		// Seed with the guaranteed-feasible all-floor combination; it only
		// wins if the range holds nothing feasible, and the reduction step
		// discards it then.
		bestMask, bestCost = 0, base
	}
	for mask := lo + 1; mask < hi; mask++ {
		c := cost(mask, base, extras)
		if c.LessThanOrEqual(budget) && c.GreaterThan(bestCost) {
			bestMask, bestCost = mask, c
		}
	}
	return bestMask, bestCost
}

// cost computes the total purchase cost of one rounding combination.
func cost(mask uint64, base Money, extras []Money) Money {
	c := base
	for i := 0; mask != 0; i, mask = i+1, mask>>1 {
		if mask&1 != 0 {
			c = c.Add(extras[i])
		}
	}
	return c
}

// searchParallel partitions the combination index space across CPUs. Each
// worker keeps a local best, the reduction keeps the global maximum cost
// with the lowest index among equals, so the result does not depend on the
// partitioning.
func searchParallel(n int, base Money, extras []Money, budget Money) (uint64, Money) {
	size := uint64(1) << n
	workers := uint64(runtime.NumCPU())
	if workers > size {
		workers = 1
	}
	chunk := size / workers

	var mu sync.Mutex
	bestMask, bestCost := uint64(0), base

	var g errgroup.Group
	for w := uint64(0); w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = size
		}
		g.Go(func() error {
			mask, c := searchRange(lo, hi, base, extras, budget)
			mu.Lock()
			defer mu.Unlock()
			if c.GreaterThan(bestCost) || (c.Equal(bestCost) && mask < bestMask) {
				bestMask, bestCost = mask, c
			}
			return nil
		})
	}
	// Workers never fail; the group only coordinates completion.
	_ = g.Wait()

	return bestMask, bestCost
}
