package report

import (
	"context"
	"fmt"

	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/internal/simulation"
)

// Builder assembles a complete ProjectionReport for a plan.
type Builder struct {
	Engine *calculation.CalculationEngine
	Logger calculation.Logger
	// SkipLifeStage leaves the life-stage section empty.
	SkipLifeStage bool
}

// NewBuilder creates a builder whose engines log to logger (nil for none).
func NewBuilder(logger calculation.Logger) *Builder {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	return &Builder{Engine: engine, Logger: logger}
}

// Build runs the strategy comparison, the growth projection and, when the plan
// has a profile, a life-stage simulation driven to completion in virtual time.
func (b *Builder) Build(ctx context.Context, plan *domain.Plan) (*domain.ProjectionReport, error) {
	report, err := b.Engine.RunPlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	if b.SkipLifeStage || !hasProfile(plan.Profile) {
		return report, nil
	}

	speed := plan.Simulation.Speed
	if speed == "" {
		speed = domain.SpeedMonth
	}
	outcome, err := simulation.RunInstant(ctx, plan.Profile, speed, b.Logger)
	if err != nil {
		return nil, fmt.Errorf("life stage simulation: %w", err)
	}
	report.LifeStage = &outcome
	return report, nil
}

// hasProfile reports whether the plan seeds a life-stage run. A profile whose
// age, salary, savings, investments and debt are all zero counts as absent, so
// a newborn with no money and no debt is not simulated. The debt rate alone
// does not make a profile.
func hasProfile(p domain.PersonalFinancialData) bool {
	return p.Age > 0 || !p.CurrentSalary.IsZero() || !p.Savings.IsZero() ||
		!p.Investments.IsZero() || !p.DebtAmount.IsZero()
}
