package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionReport bundles every engine output for a plan. Sections that were
// not computed are left nil.
type ProjectionReport struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	GeneratedAt   time.Time           `json:"generated_at"`
	Debts         []Debt              `json:"debts"`
	ExtraPayment  decimal.Decimal     `json:"extra_payment"`
	Comparison    *StrategyComparison `json:"comparison,omitempty"`
	Investment    InvestmentInputs    `json:"investment"`
	Growth        []YearlySnapshot    `json:"growth,omitempty"`
	GrowthSummary *GrowthSummary      `json:"growth_summary,omitempty"`
	LifeStage     *LifeStageOutcome   `json:"life_stage,omitempty"`
	Assumptions   []string            `json:"assumptions"` // Dynamic assumptions from the plan
}

// HasDebts reports whether a strategy comparison was produced.
func (r *ProjectionReport) HasDebts() bool {
	return r.Comparison != nil
}

// HasGrowth reports whether a growth projection was produced.
func (r *ProjectionReport) HasGrowth() bool {
	return len(r.Growth) > 0
}

// HasLifeStage reports whether a life-stage trajectory was produced
func (r *ProjectionReport) HasLifeStage() bool {
	return r.LifeStage != nil
}

// FinalHistory returns the last sampled life-stage point, if any.
func (r *ProjectionReport) FinalHistory() (HistoricalDataPoint, bool) {
	if r.LifeStage == nil || len(r.LifeStage.History) == 0 {
		return HistoricalDataPoint{}, false
	}
	return r.LifeStage.History[len(r.LifeStage.History)-1], true
}
