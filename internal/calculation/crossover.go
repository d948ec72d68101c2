package calculation

import (
	"github.com/shopspring/decimal"
)

// SeriesPoint is one sample of a trajectory: X is time (years or age), Y the value.
type SeriesPoint struct {
	X float64
	Y decimal.Decimal
}

// Crossing is the point where a trajectory first reaches a target value.
type Crossing struct {
	Index    int             // index of the first sample at or above the target
	X        float64         // interpolated position between the previous sample and Index
	Fraction decimal.Decimal // position within the interval [Index-1, Index], 1 means exactly at Index
	Value    decimal.Decimal // the target value
}

// FirstCrossing finds where points first reach target, interpolating linearly
// between the last sample below and the first sample at or above it. A series
// that starts at or above target crosses at its first sample.
func FirstCrossing(points []SeriesPoint, target decimal.Decimal) (*Crossing, bool) {
	if len(points) == 0 {
		return nil, false
	}
	if points[0].Y.GreaterThanOrEqual(target) {
		return &Crossing{Index: 0, X: points[0].X, Fraction: decimal.NewFromInt(1), Value: target}, true
	}

	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		if curr.Y.LessThan(target) {
			continue
		}

		// diff(t) = prev + t*(curr - prev), solve diff(t) = target
		denom := curr.Y.Sub(prev.Y)
		t := decimal.NewFromInt(1)
		if !denom.IsZero() {
			t = target.Sub(prev.Y).Div(denom)
		}
		if t.LessThan(decimal.Zero) {
			t = decimal.Zero
		} else if t.GreaterThan(decimal.NewFromInt(1)) {
			t = decimal.NewFromInt(1)
		}

		return &Crossing{
			Index:    i,
			X:        prev.X + t.InexactFloat64()*(curr.X-prev.X),
			Fraction: t,
			Value:    target,
		}, true
	}

	// No crossover found
	return nil, false
}
