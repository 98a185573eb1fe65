package rebalance

import "fmt"

// Percent is a percentage (25.0 means 25%). Ratios are stored as fractions
// in holdings and converted to Percent for reports only.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Fraction returns the percentage as a fraction of 1 (25% gives 0.25).
func (p Percent) Fraction() float64 { return float64(p) / 100 }
