package simulation

import (
	"context"

	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/domain"
)

// runBatch is how many virtual ticks RunInstant fires between context checks.
const runBatch = 256

// RunInstant drives a fresh simulator from seed to completion in virtual time
// and returns its outcome with trajectory statistics attached.
func RunInstant(ctx context.Context, seed domain.PersonalFinancialData, speed domain.Speed, logger calculation.Logger) (domain.LifeStageOutcome, error) {
	sched := NewManualScheduler()
	sim := New(WithScheduler(sched), WithSpeed(speed), WithLogger(logger))
	defer sim.Close()

	if err := sim.Start(seed); err != nil {
		return domain.LifeStageOutcome{}, err
	}
	for sim.Status() == domain.StatusRunning {
		if err := ctx.Err(); err != nil {
			return sim.Outcome(), err
		}
		if sched.RunUntilIdle(runBatch) == 0 {
			break
		}
	}

	outcome := sim.Outcome()
	stats, err := Analyze(outcome.Seed, outcome.History)
	if err != nil {
		return outcome, err
	}
	outcome.Stats = &stats
	return outcome, nil
}
