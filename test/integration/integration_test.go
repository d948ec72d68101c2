package integration

import (
	"context"
	"testing"

	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/config"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func loadPlan(t *testing.T) *domain.Plan {
	t.Helper()
	plan, err := config.NewInputParser().LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)
	return plan
}

func TestEndToEndProjection(t *testing.T) {
	plan := loadPlan(t)
	require.Len(t, plan.Debts, 3)

	rep, err := report.NewBuilder(zaptest.NewLogger(t).Sugar()).Build(context.Background(), plan)
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "Integration household", rep.Name)

	require.True(t, rep.HasDebts())
	cmp := rep.Comparison
	assert.Equal(t, domain.StrategyAvalanche, cmp.Best().Strategy, "highest-rate-first should pay the least interest")
	assert.True(t, cmp.Avalanche.TotalInterest.LessThanOrEqual(cmp.Snowball.TotalInterest))
	assert.True(t, cmp.Snowball.TotalInterest.LessThan(cmp.Minimum.TotalInterest))
	assert.True(t, cmp.Avalanche.PaidOff())

	require.True(t, rep.HasGrowth())
	assert.Len(t, rep.Growth, 21)
	require.NotNil(t, rep.GrowthSummary)
	assert.True(t, rep.GrowthSummary.TotalEarnings.IsPositive())

	require.True(t, rep.HasLifeStage())
	assert.Equal(t, domain.StatusCompleted, rep.LifeStage.Status)
	assert.Len(t, rep.LifeStage.History, 45)
	last, ok := rep.FinalHistory()
	require.True(t, ok)
	assert.Equal(t, 90, last.Age)
	assert.True(t, last.Debt.IsZero())
}

func TestEngineMatchesBuilder(t *testing.T) {
	plan := loadPlan(t)
	engine := calculation.NewCalculationEngine()

	comparison, err := engine.RunDebts(context.Background(), plan)
	require.NoError(t, err)

	b := report.NewBuilder(nil)
	b.SkipLifeStage = true
	rep, err := b.Build(context.Background(), plan)
	require.NoError(t, err)
	assert.Nil(t, rep.LifeStage)

	assert.True(t, comparison.Avalanche.TotalPaid.Equal(rep.Comparison.Avalanche.TotalPaid))
	assert.Equal(t, comparison.Snowball.Months, rep.Comparison.Snowball.Months)
}

func TestPlanValidation(t *testing.T) {
	parser := config.NewInputParser()
	plan := loadPlan(t)
	require.NoError(t, parser.ValidatePlan(plan))

	plan.Debts = append(plan.Debts, plan.Debts[0])
	assert.ErrorIs(t, parser.ValidatePlan(plan), domain.ErrInvalidInput)
}
