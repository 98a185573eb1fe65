package rebalance

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

const sampleHoldings = `symbol,price,shares,goal_ratio
AAPL,150.25,10,0.5
GOOG,2800.00,1,0.3
SAP,120.50,5,0.2
`

func TestDecodeHoldings(t *testing.T) {
	p, err := DecodeHoldings(strings.NewReader(sampleHoldings), "EUR")
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	if len(p) != 3 {
		t.Fatalf("DecodeHoldings() returned %d holdings, want 3", len(p))
	}

	want := Portfolio{
		hold("AAPL", 150.25, 10, 0.5),
		hold("GOOG", 2800, 1, 0.3),
		hold("SAP", 120.5, 5, 0.2),
	}
	for i := range want {
		if p[i].Symbol != want[i].Symbol {
			t.Errorf("holding %d Symbol = %q, want %q", i, p[i].Symbol, want[i].Symbol)
		}
		if !p[i].Price.Equal(want[i].Price) {
			t.Errorf("holding %d Price = %s, want %s", i, p[i].Price, want[i].Price)
		}
		if !p[i].Shares.Equal(want[i].Shares) {
			t.Errorf("holding %d Shares = %s, want %s", i, p[i].Shares, want[i].Shares)
		}
		if !p[i].GoalRatio.Equal(want[i].GoalRatio) {
			t.Errorf("holding %d GoalRatio = %s, want %s", i, p[i].GoalRatio, want[i].GoalRatio)
		}
	}
}

func TestDecodeHoldings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"wrong header", "symbol,price,quantity,goal_ratio\nAAPL,150,10,1\n"},
		{"missing column", "symbol,price,shares\nAAPL,150,10\n"},
		{"bad price", "symbol,price,shares,goal_ratio\nAAPL,abc,10,1\n"},
		{"bad shares", "symbol,price,shares,goal_ratio\nAAPL,150,ten,1\n"},
		{"bad ratio", "symbol,price,shares,goal_ratio\nAAPL,150,10,half\n"},
		{"zero price", "symbol,price,shares,goal_ratio\nAAPL,0,10,1\n"},
		{"fractional shares", "symbol,price,shares,goal_ratio\nAAPL,150,10.5,1\n"},
		{"duplicate symbol", "symbol,price,shares,goal_ratio\nAAPL,150,10,0.5\nAAPL,150,10,0.5\n"},
		{"empty file", ""},
		{"header only", "symbol,price,shares,goal_ratio\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHoldings(strings.NewReader(tt.csv), "EUR")
			if err == nil {
				t.Fatal("DecodeHoldings() error = nil, want an error")
			}
		})
	}
}

// TestDecodeHoldings_RatioDriftIsNotAnError pins the loader policy: a
// goal-ratio sum away from 1 is degraded but loadable input.
func TestDecodeHoldings_RatioDriftIsNotAnError(t *testing.T) {
	in := "symbol,price,shares,goal_ratio\nAAPL,150,10,0.4\nGOOG,2800,1,0.4\n"
	p, err := DecodeHoldings(strings.NewReader(in), "EUR")
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	if !errors.Is(p.Check(), ErrInvalidInput) {
		t.Errorf("Check() should flag the ratio drift")
	}
}

func TestEncodePlan(t *testing.T) {
	p := Portfolio{
		hold("AAA", 10, 5, 0.5),
		hold("BBB", 20, 0, 0.5),
	}
	plan, err := p.Rebalance(EUR(100))
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}

	var b strings.Builder
	if err := EncodePlan(&b, plan); err != nil {
		t.Fatalf("EncodePlan() error = %v", err)
	}

	want := "symbol,price,shares,goal_ratio,reinvest_shares,rebalanced_ratio\n" +
		"AAA,10,5,0.5,2,0.4667\n" +
		"BBB,20,0,0.5,4,0.5333\n"
	if b.String() != want {
		t.Errorf("EncodePlan() =\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestSavePlan(t *testing.T) {
	p := Portfolio{hold("AAA", 7, 0, 1)}
	plan, err := p.Rebalance(EUR(50))
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}

	dir := t.TempDir()
	path, err := SavePlan(dir, plan)
	if err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "rebalanced_") || !strings.HasSuffix(base, ".csv") {
		t.Errorf("SavePlan() wrote %q, want rebalanced_<timestamp>.csv", base)
	}

	// and it must load back as a readable snapshot.
	reloaded, err := LoadPortfolio(path, "EUR")
	if err == nil {
		t.Errorf("LoadPortfolio() on a snapshot = %v, want a header error", reloaded)
	}
}
