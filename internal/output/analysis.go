package output

import (
	"fmt"

	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// GrowthMilestone is the balance reported as the investment milestone.
var GrowthMilestone = decimal.NewFromInt(100000)

// Recommendation encapsulates the best repayment strategy and report highlights.
type Recommendation struct {
	Strategy      domain.Strategy
	InterestSaved decimal.Decimal
	MonthsSaved   int
	// MilestoneYear is the interpolated year the growth projection reaches GrowthMilestone.
	MilestoneYear *float64
	Notes         []string
}

// AnalyzeReport picks the repayment strategy with the lowest total interest and
// collects plain-language highlights from every section of the report.
func AnalyzeReport(report *domain.ProjectionReport) Recommendation {
	var rec Recommendation

	if report.HasDebts() {
		best := report.Comparison.Best()
		minimum := report.Comparison.Minimum
		rec.Strategy = best.Strategy
		rec.InterestSaved = minimum.TotalInterest.Sub(best.TotalInterest)
		rec.MonthsSaved = minimum.Months - best.Months

		if best.Strategy != domain.StrategyMinimum && rec.InterestSaved.IsPositive() {
			rec.Notes = append(rec.Notes, fmt.Sprintf("Use the %s strategy: it saves %s in interest and %d months versus minimum payments",
				best.Strategy, FormatCurrency(rec.InterestSaved), rec.MonthsSaved))
		}
		if !minimum.PaidOff() {
			rec.Notes = append(rec.Notes, fmt.Sprintf("Minimum payments alone do not clear the debts within %d months (%s still owed)",
				domain.MaxAmortizationMonths, FormatCurrency(minimum.RemainingBalance)))
		}
		if !best.PaidOff() {
			rec.Notes = append(rec.Notes, "No strategy pays off every debt: raise the minimum or extra payment")
		}
	}

	if report.HasGrowth() {
		if c, ok := calculation.GrowthMilestone(report.Growth, GrowthMilestone); ok {
			year := c.X
			rec.MilestoneYear = &year
			rec.Notes = append(rec.Notes, fmt.Sprintf("Investments reach %s after about %.1f years", FormatCurrency(GrowthMilestone), year))
		}
	}

	if report.HasLifeStage() && report.LifeStage.Stats != nil {
		stats := report.LifeStage.Stats
		if stats.DebtFreeAge != nil {
			rec.Notes = append(rec.Notes, fmt.Sprintf("Life stage: debt free at age %s", FormatAge(*stats.DebtFreeAge)))
		}
		if stats.NetWorthBreakEven != nil && *stats.NetWorthBreakEven > report.LifeStage.Seed.Age {
			rec.Notes = append(rec.Notes, fmt.Sprintf("Life stage: net worth turns positive at age %s", FormatAge(*stats.NetWorthBreakEven)))
		}
	}
	return rec
}
