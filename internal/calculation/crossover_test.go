package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func pts(values ...float64) []SeriesPoint {
	out := make([]SeriesPoint, len(values))
	for i, v := range values {
		out[i] = SeriesPoint{X: float64(30 + i), Y: decimal.NewFromFloat(v)}
	}
	return out
}

// Test exact crossover at a sample
func TestFirstCrossing_ExactSample(t *testing.T) {
	c, ok := FirstCrossing(pts(-200, -100, 0, 100), decimal.Zero)
	if !ok {
		t.Fatalf("expected crossover")
	}
	if c.Index != 2 || c.X != 32 {
		t.Fatalf("expected index 2 at x=32, got %d at %v", c.Index, c.X)
	}
	if !c.Fraction.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected fraction 1, got %s", c.Fraction)
	}
}

// Test interpolation inside an interval
func TestFirstCrossing_Interpolation(t *testing.T) {
	// -20 -> 20 crosses zero halfway through the second interval.
	c, ok := FirstCrossing(pts(-50, -20, 20), decimal.Zero)
	if !ok {
		t.Fatalf("expected crossover")
	}
	if c.Index != 2 {
		t.Fatalf("expected index 2, got %d", c.Index)
	}
	if c.X != 31.5 {
		t.Fatalf("expected x=31.5, got %v", c.X)
	}
}

func TestFirstCrossing_StartsAboveTarget(t *testing.T) {
	c, ok := FirstCrossing(pts(10, 20), decimal.Zero)
	if !ok || c.Index != 0 || c.X != 30 {
		t.Fatalf("expected crossing at first sample, got %+v ok=%v", c, ok)
	}
}

func TestFirstCrossing_None(t *testing.T) {
	if _, ok := FirstCrossing(pts(-3, -2, -1), decimal.Zero); ok {
		t.Fatalf("expected no crossover")
	}
	if _, ok := FirstCrossing(nil, decimal.Zero); ok {
		t.Fatalf("expected no crossover for empty series")
	}
}
