package rebalance

import (
	"errors"
	"testing"
)

func TestPortfolio_Targets(t *testing.T) {
	tests := []struct {
		name       string
		portfolio  Portfolio
		investment Money
		expected   []Quantity
	}{
		{
			name: "two holdings reach half half",
			portfolio: Portfolio{
				hold("AAA", 10, 5, 0.5),
				hold("BBB", 20, 0, 0.5),
			},
			investment: EUR(100),
			// current value 50, target total 150, target values 75/75,
			// deltas 25/75, theoretical shares 2.5 and 3.75.
			expected: []Quantity{Q(2.5), Q(3.75)},
		},
		{
			name: "over-allocated holding gets a negative target",
			portfolio: Portfolio{
				hold("AAA", 10, 10, 0.2),
				hold("BBB", 20, 0, 0.8),
			},
			investment: EUR(0),
			// total stays 100, target values 20/80, deltas -80/+80.
			expected: []Quantity{Q(-8), Q(4)},
		},
		{
			name: "zero investment balanced portfolio needs nothing",
			portfolio: Portfolio{
				hold("AAA", 10, 5, 0.5),
				hold("BBB", 25, 2, 0.5),
			},
			investment: EUR(0),
			expected:   []Quantity{Q(0), Q(0)},
		},
		{
			name: "single holding absorbs everything",
			portfolio: Portfolio{
				hold("AAA", 7, 0, 1),
			},
			investment: EUR(50),
			expected:   []Quantity{EUR(50).DivPrice(EUR(7))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.portfolio.Targets(tt.investment)
			if err != nil {
				t.Fatalf("Targets() error = %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("Targets() returned %d entries, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if !got[i].Equal(tt.expected[i]) {
					t.Errorf("Targets()[%d] = %s, want %s", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestPortfolio_Targets_InvalidInput(t *testing.T) {
	valid := Portfolio{hold("AAA", 10, 5, 1)}

	tests := []struct {
		name       string
		portfolio  Portfolio
		investment Money
	}{
		{"empty portfolio", Portfolio{}, EUR(100)},
		{"negative investment", valid, EUR(-1)},
		{"zero price", Portfolio{hold("AAA", 0, 5, 1)}, EUR(100)},
		{"negative price", Portfolio{hold("AAA", -10, 5, 1)}, EUR(100)},
		{"negative shares", Portfolio{hold("AAA", 10, -5, 1)}, EUR(100)},
		{"fractional shares", Portfolio{{Symbol: "AAA", Price: EUR(10), Shares: Q(1.5), GoalRatio: Q(1)}}, EUR(100)},
		{"missing symbol", Portfolio{hold("", 10, 5, 1)}, EUR(100)},
		{"goal ratio above one", Portfolio{hold("AAA", 10, 5, 1.5)}, EUR(100)},
		{"currency mismatch", valid, USD(100)},
		{"mixed currencies", Portfolio{hold("AAA", 10, 5, 0.5), {Symbol: "BBB", Price: USD(20), GoalRatio: Q(0.5)}}, EUR(100)},
		{"duplicate symbol", Portfolio{hold("AAA", 10, 5, 0.5), hold("AAA", 20, 0, 0.5)}, EUR(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.portfolio.Targets(tt.investment)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Targets() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

// TestPortfolio_Targets_SpendsExactlyTheInvestment checks the defining
// property of the theoretical targets: buying them fractionally would spend
// exactly the investment when goal ratios sum to 1.
func TestPortfolio_Targets_SpendsExactlyTheInvestment(t *testing.T) {
	p := Portfolio{
		hold("AAA", 150.25, 10, 0.5),
		hold("BBB", 2800, 1, 0.3),
		hold("CCC", 120.5, 5, 0.2),
	}
	investment := EUR(5000)

	targets, err := p.Targets(investment)
	if err != nil {
		t.Fatalf("Targets() error = %v", err)
	}

	spent := EUR(0)
	for i, h := range p {
		spent = spent.Add(h.Price.Mul(targets[i]))
	}
	// The divisions are rounded to decimal precision, so compare within a
	// tolerance far below a cent.
	diff := spent.Sub(investment)
	if diff.IsNegative() {
		diff = EUR(0).Sub(diff)
	}
	if diff.GreaterThan(EUR(1e-9)) {
		t.Errorf("fractional spend = %s, want %s", spent, investment)
	}
}
