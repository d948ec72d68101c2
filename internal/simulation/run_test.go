package simulation

import (
	"context"
	"errors"
	"testing"

	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInstant(t *testing.T) {
	out, err := RunInstant(context.Background(), seedAt(30), domain.SpeedMonth, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, out.Status)
	assert.Equal(t, domain.SpeedMonth, out.Speed)
	require.Len(t, out.History, 60)
	assert.Equal(t, 31, out.History[0].Age)
	assert.Equal(t, 90, out.History[59].Age)
	require.NotNil(t, out.Stats)
	assert.Equal(t, 60, out.Stats.Samples)
	assert.True(t, out.Stats.FinalNetWorth.Equal(out.History[59].NetWorth))
}

func TestRunInstant_SpeedDoesNotChangeSampleAges(t *testing.T) {
	year, err := RunInstant(context.Background(), seedAt(80), domain.SpeedYear, nil)
	require.NoError(t, err)
	week, err := RunInstant(context.Background(), seedAt(80), domain.SpeedWeek, nil)
	require.NoError(t, err)

	require.Len(t, year.History, 10)
	require.Len(t, week.History, 10)
	for i := range year.History {
		assert.Equal(t, year.History[i].Age, week.History[i].Age)
		assert.True(t, year.History[i].Salary.Equal(week.History[i].Salary), "salary steps once per birthday")
	}
}

func TestRunInstant_InvalidSeed(t *testing.T) {
	seed := seedAt(30)
	seed.Age = 120
	_, err := RunInstant(context.Background(), seed, domain.SpeedYear, nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRunInstant_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := RunInstant(ctx, seedAt(30), domain.SpeedDay, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.StatusRunning, out.Status)
}
