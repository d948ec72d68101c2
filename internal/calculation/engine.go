package calculation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpgo/projection-engine/internal/domain"
)

// CalculationEngine runs the pure projection engines over a plan
type CalculationEngine struct {
	Amortization *AmortizationEngine
	Comparator   *StrategyComparator
	Growth       *CompoundGrowthEngine
	Logger       Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	amortization := NewAmortizationEngine()
	return &CalculationEngine{
		Amortization: amortization,
		Comparator:   NewStrategyComparator(amortization),
		Growth:       NewCompoundGrowthEngine(),
		Logger:       NopLogger{},
	}
}

// SetLogger sets the logger for the engine and every sub-engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = orNop(l)
	ce.Amortization.SetLogger(l)
	ce.Comparator.SetLogger(l)
	ce.Growth.SetLogger(l)
}

// RunDebts compares every repayment strategy for the plan's debts.
func (ce *CalculationEngine) RunDebts(ctx context.Context, plan *domain.Plan) (*domain.StrategyComparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	comparison, err := ce.Comparator.CompareAll(plan.Debts, plan.ExtraPayment)
	if err != nil {
		return nil, fmt.Errorf("compare strategies: %w", err)
	}
	return comparison, nil
}

// RunGrowth projects the plan's investment and summarizes the final year.
func (ce *CalculationEngine) RunGrowth(ctx context.Context, plan *domain.Plan) ([]domain.YearlySnapshot, *domain.GrowthSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	snapshots, err := ce.Growth.Project(plan.Investment)
	if err != nil {
		return nil, nil, fmt.Errorf("project growth: %w", err)
	}
	summary := SummarizeGrowth(snapshots)
	return snapshots, &summary, nil
}

// RunPlan builds a report with the debt and growth sections of plan. Sections
// the plan does not describe (no debts, zero horizon) are left empty.
func (ce *CalculationEngine) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.ProjectionReport, error) {
	report := &domain.ProjectionReport{
		ID:           uuid.NewString(),
		Name:         plan.Name,
		GeneratedAt:  Now(),
		Debts:        domain.CloneDebts(plan.Debts),
		ExtraPayment: plan.ExtraPayment,
		Investment:   plan.Investment,
		Assumptions:  plan.GenerateAssumptions(),
	}

	if len(plan.Debts) > 0 {
		comparison, err := ce.RunDebts(ctx, plan)
		if err != nil {
			return nil, err
		}
		report.Comparison = comparison
	}

	if plan.Investment.TimeHorizonYears > 0 {
		snapshots, summary, err := ce.RunGrowth(ctx, plan)
		if err != nil {
			return nil, err
		}
		report.Growth = snapshots
		report.GrowthSummary = summary
	}

	ce.Logger.Infof("plan %q: %d debts, %d growth snapshots", plan.Name, len(plan.Debts), len(report.Growth))
	return report, nil
}
