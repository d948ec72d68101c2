package simulation

import (
	"github.com/montanaflynn/stats"
	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Analyze computes trajectory statistics for a run seeded with seed.
func Analyze(seed domain.PersonalFinancialData, history []domain.HistoricalDataPoint) (domain.TrajectoryStats, error) {
	out := domain.TrajectoryStats{Samples: len(history)}
	if len(history) == 0 {
		return out, nil
	}

	start := initialState(seed)
	prev := start.NetWorth
	changes := make(stats.Float64Data, 0, len(history))
	out.PeakNetWorth = history[0].NetWorth
	out.PeakNetWorthAge = history[0].Age
	for _, p := range history {
		changes = append(changes, p.NetWorth.Sub(prev).InexactFloat64())
		prev = p.NetWorth
		if p.NetWorth.GreaterThan(out.PeakNetWorth) {
			out.PeakNetWorth = p.NetWorth
			out.PeakNetWorthAge = p.Age
		}
	}
	out.FinalNetWorth = history[len(history)-1].NetWorth

	mean, err := stats.Mean(changes)
	if err != nil {
		return out, err
	}
	median, err := stats.Median(changes)
	if err != nil {
		return out, err
	}
	out.MeanChange = decimal.NewFromFloat(mean).Round(2)
	out.MedianChange = decimal.NewFromFloat(median).Round(2)
	if len(changes) > 1 {
		sd, err := stats.StandardDeviationSample(changes)
		if err != nil {
			return out, err
		}
		out.StdDevChange = decimal.NewFromFloat(sd).Round(2)
	}

	if age, ok := NetWorthBreakEven(seed, history); ok {
		out.NetWorthBreakEven = &age
	}
	if age, ok := DebtFreeAge(seed, history); ok {
		out.DebtFreeAge = &age
	}
	return out, nil
}

// series prepends the seed position to the sampled trajectory.
func series(seed domain.PersonalFinancialData, history []domain.HistoricalDataPoint, value func(domain.FinancialState) decimal.Decimal, sampled func(domain.HistoricalDataPoint) decimal.Decimal) []calculation.SeriesPoint {
	points := make([]calculation.SeriesPoint, 0, len(history)+1)
	points = append(points, calculation.SeriesPoint{X: seed.Age, Y: value(initialState(seed))})
	for _, p := range history {
		points = append(points, calculation.SeriesPoint{X: float64(p.Age), Y: sampled(p)})
	}
	return points
}

// NetWorthBreakEven returns the interpolated age at which net worth first becomes non-negative.
func NetWorthBreakEven(seed domain.PersonalFinancialData, history []domain.HistoricalDataPoint) (float64, bool) {
	points := series(seed, history,
		func(s domain.FinancialState) decimal.Decimal { return s.NetWorth },
		func(p domain.HistoricalDataPoint) decimal.Decimal { return p.NetWorth })
	c, ok := calculation.FirstCrossing(points, decimal.Zero)
	if !ok {
		return 0, false
	}
	return c.X, true
}

// DebtFreeAge returns the interpolated age at which the remaining debt first reaches zero.
func DebtFreeAge(seed domain.PersonalFinancialData, history []domain.HistoricalDataPoint) (float64, bool) {
	points := series(seed, history,
		func(s domain.FinancialState) decimal.Decimal { return s.RemainingDebt.Neg() },
		func(p domain.HistoricalDataPoint) decimal.Decimal { return p.Debt.Neg() })
	c, ok := calculation.FirstCrossing(points, decimal.Zero)
	if !ok {
		return 0, false
	}
	return c.X, true
}
