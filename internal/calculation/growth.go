package calculation

import (
	"fmt"

	"github.com/rpgo/projection-engine/internal/domain"
	money "github.com/rpgo/projection-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// CompoundGrowthEngine projects an investment balance under fixed contribution and return assumptions.
type CompoundGrowthEngine struct {
	Logger Logger
}

// NewCompoundGrowthEngine creates an engine with a no-op logger
func NewCompoundGrowthEngine() *CompoundGrowthEngine {
	return &CompoundGrowthEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (ge *CompoundGrowthEngine) SetLogger(l Logger) {
	ge.Logger = orNop(l)
}

// ValidateInvestment checks the numeric preconditions of a growth projection.
func ValidateInvestment(in domain.InvestmentInputs) error {
	if in.InitialAmount.IsNegative() {
		return fmt.Errorf("%w: initial amount cannot be negative", domain.ErrInvalidInput)
	}
	if in.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: monthly contribution cannot be negative", domain.ErrInvalidInput)
	}
	if in.AnnualReturnPercent.IsNegative() {
		return fmt.Errorf("%w: annual return cannot be negative", domain.ErrInvalidInput)
	}
	if in.TimeHorizonYears < 1 {
		return fmt.Errorf("%w: time horizon must be at least 1 year, got %d", domain.ErrInvalidInput, in.TimeHorizonYears)
	}
	return nil
}

// Project returns one snapshot per year from year 0 (the initial state) through
// the time horizon. Each month the contribution is added before that month's
// growth. Snapshot values are rounded to cents; the running totals are not.
func (ge *CompoundGrowthEngine) Project(in domain.InvestmentInputs) ([]domain.YearlySnapshot, error) {
	if err := ValidateInvestment(in); err != nil {
		return nil, err
	}

	growthFactor := decimal.NewFromInt(1).Add(in.AnnualReturnPercent.Div(hundred).Div(twelve))
	balance := in.InitialAmount
	cumulative := in.InitialAmount

	snapshots := make([]domain.YearlySnapshot, 0, in.TimeHorizonYears+1)
	snapshots = append(snapshots, domain.YearlySnapshot{
		Year:                    0,
		Balance:                 in.InitialAmount,
		ContributionsThisYear:   decimal.Zero,
		Earnings:                decimal.Zero,
		CumulativeContributions: in.InitialAmount,
	})

	for year := 1; year <= in.TimeHorizonYears; year++ {
		contributed := decimal.Zero
		for month := 0; month < 12; month++ {
			balance = balance.Add(in.MonthlyContribution)
			balance = balance.Mul(growthFactor).Round(accumulatorPrecision)
			contributed = contributed.Add(in.MonthlyContribution)
		}
		cumulative = cumulative.Add(contributed)

		snapshots = append(snapshots, domain.YearlySnapshot{
			Year:                    year,
			Balance:                 money.NewMoneyFromDecimal(balance).Round().Decimal,
			ContributionsThisYear:   money.NewMoneyFromDecimal(contributed).Round().Decimal,
			Earnings:                money.NewMoneyFromDecimal(balance.Sub(cumulative)).Round().Decimal,
			CumulativeContributions: money.NewMoneyFromDecimal(cumulative).Round().Decimal,
		})
	}

	last := snapshots[len(snapshots)-1]
	orNop(ge.Logger).Debugf("growth projection: %d years, final balance %s", in.TimeHorizonYears, last.Balance.StringFixed(2))
	return snapshots, nil
}

// SummarizeGrowth takes the aggregate result from the final snapshot.
func SummarizeGrowth(snapshots []domain.YearlySnapshot) domain.GrowthSummary {
	if len(snapshots) == 0 {
		return domain.GrowthSummary{}
	}
	last := snapshots[len(snapshots)-1]
	return domain.GrowthSummary{
		TotalBalance:       last.Balance,
		TotalContributions: last.CumulativeContributions,
		TotalEarnings:      last.Earnings,
	}
}

// GrowthMilestone returns the interpolated (fractional) year at which the
// projected balance first reaches target.
func GrowthMilestone(snapshots []domain.YearlySnapshot, target decimal.Decimal) (*Crossing, bool) {
	points := make([]SeriesPoint, len(snapshots))
	for i, s := range snapshots {
		points[i] = SeriesPoint{X: float64(s.Year), Y: s.Balance}
	}
	return FirstCrossing(points, target)
}
