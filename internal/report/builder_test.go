package report

import (
	"context"
	"testing"

	"github.com/rpgo/projection-engine/internal/config"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultPlan(t *testing.T) {
	plan := config.NewInputParser().DefaultPlan()
	plan.Simulation.Speed = domain.SpeedYear

	report, err := NewBuilder(nil).Build(context.Background(), plan)
	require.NoError(t, err)

	assert.True(t, report.HasDebts())
	assert.True(t, report.HasGrowth())
	require.True(t, report.HasLifeStage())
	assert.Equal(t, domain.StatusCompleted, report.LifeStage.Status)
	assert.Len(t, report.LifeStage.History, 60)
	require.NotNil(t, report.LifeStage.Stats)

	last, ok := report.FinalHistory()
	require.True(t, ok)
	assert.Equal(t, 90, last.Age)
}

func TestBuild_SkipsLifeStage(t *testing.T) {
	plan := config.NewInputParser().DefaultPlan()

	b := NewBuilder(nil)
	b.SkipLifeStage = true
	report, err := b.Build(context.Background(), plan)
	require.NoError(t, err)
	assert.False(t, report.HasLifeStage())

	plan.Profile = domain.PersonalFinancialData{}
	report, err = NewBuilder(nil).Build(context.Background(), plan)
	require.NoError(t, err)
	assert.False(t, report.HasLifeStage(), "no profile, no simulation")
}

func TestBuild_InvalidProfile(t *testing.T) {
	plan := config.NewInputParser().DefaultPlan()
	plan.Profile.Age = 95

	_, err := NewBuilder(nil).Build(context.Background(), plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "life stage simulation")
}

func TestBuild_ZeroProfileIsAbsent(t *testing.T) {
	plan := config.NewInputParser().DefaultPlan()
	plan.Profile = domain.PersonalFinancialData{Age: 0, DebtInterestRate: decimal.NewFromInt(5)}

	report, err := NewBuilder(nil).Build(context.Background(), plan)
	require.NoError(t, err)
	assert.False(t, report.HasLifeStage(), "an all-zero profile is treated as absent")

	plan.Profile.CurrentSalary = decimal.NewFromInt(1000)
	plan.Simulation.Speed = domain.SpeedYear
	report, err = NewBuilder(nil).Build(context.Background(), plan)
	require.NoError(t, err)
	require.True(t, report.HasLifeStage(), "age 0 with a salary is simulated")
	assert.Len(t, report.LifeStage.History, 90)
}
