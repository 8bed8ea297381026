package pricing

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestForWeightTotals(t *testing.T) {
	tests := []struct {
		weight float64
		total  float64
	}{
		{0, 18.00},  // minimum charge floor + handling
		{1, 18.00},  // 5.50 < 15.00 minimum
		{2, 18.00},  // 11.00 < 15.00 minimum
		{3, 19.50},  // 16.50 + 3.00
		{5, 30.50},  // 27.50 + 3.00
		{10, 58.00}, // 55.00 + 3.00
	}

	for _, tt := range tests {
		q := DefaultRates.ForWeight(tt.weight, 0, false)
		if !almostEqual(q.Total, tt.total) {
			t.Errorf("ForWeight(%g): total = %.2f, want %.2f", tt.weight, q.Total, tt.total)
		}
	}
}

func TestMinimumChargeIsAFloor(t *testing.T) {
	q := DefaultRates.ForWeight(2, 0, false)
	if !almostEqual(q.BaseCost, 15.00) {
		t.Errorf("base cost = %.2f, want the 15.00 minimum", q.BaseCost)
	}
	// The minimum must not be added on top of the per-pound cost.
	q = DefaultRates.ForWeight(10, 0, false)
	if !almostEqual(q.BaseCost, 55.00) {
		t.Errorf("base cost = %.2f, want 55.00", q.BaseCost)
	}
}

func TestInsurance(t *testing.T) {
	q := DefaultRates.ForWeight(5, 200, true)
	if !almostEqual(q.Insurance, 6.00) {
		t.Errorf("insurance = %.2f, want 6.00", q.Insurance)
	}
	if !almostEqual(q.Total, 36.50) {
		t.Errorf("total = %.2f, want 36.50", q.Total)
	}

	// Declared value without the insurance flag costs nothing.
	q = DefaultRates.ForWeight(5, 200, false)
	if q.Insurance != 0 {
		t.Errorf("insurance = %.2f, want 0", q.Insurance)
	}
}

func TestBreakdownFormatting(t *testing.T) {
	q := DefaultRates.ForWeight(5, 0, false)
	lines := q.Breakdown(DefaultRates)
	if len(lines) != 3 {
		t.Fatalf("expected 3 breakdown lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[len(lines)-1], "$30.50") {
		t.Errorf("total line %q should contain $30.50", lines[len(lines)-1])
	}

	q = DefaultRates.ForWeight(5, 100, true)
	lines = q.Breakdown(DefaultRates)
	if len(lines) != 4 {
		t.Fatalf("expected insurance line, got %v", lines)
	}
	if !strings.Contains(lines[2], "3%") {
		t.Errorf("insurance line %q should mention the 3%% rate", lines[2])
	}
}
