package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/internal/logging"
	"github.com/rpgo/projection-engine/internal/output"
	"github.com/rpgo/projection-engine/internal/simulation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLifeStageCmd(a *app) *cobra.Command {
	var (
		speed   string
		window  string
		instant bool
	)
	cmd := &cobra.Command{
		Use:   "lifestage",
		Short: "Simulate salary, investments and debt from the plan's profile to age 90",
		Long: "Runs the life stage simulation in real time, printing one line per year of age.\n" +
			"Ticks follow the selected speed (day, week, month or year per tick). " +
			"Use --instant to run without waiting between ticks. Ctrl-C stops the run and prints what was simulated.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())
			plan, err := a.loadPlan(logger)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("speed") {
				if plan.Simulation.Speed, err = domain.ParseSpeed(speed); err != nil {
					return err
				}
			}
			if plan.Simulation.Speed == "" {
				plan.Simulation.Speed = domain.SpeedMonth
			}
			var w simulation.Window
			if window != "" {
				if w, err = simulation.ParseWindow(window); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var outcome domain.LifeStageOutcome
			if instant {
				outcome, err = simulation.RunInstant(ctx, plan.Profile, plan.Simulation.Speed, logger)
			} else {
				outcome, err = runLive(ctx, logger, cmd.OutOrStdout(), plan)
			}
			if err != nil {
				return err
			}

			if w != "" {
				points, err := simulation.SliceWindow(outcome.History, w, outcome.Progress.CurrentAge)
				if err != nil {
					return err
				}
				outcome.History = points
			}
			return printOutcome(cmd.OutOrStdout(), outcome, instant || w != "")
		},
	}
	cmd.Flags().StringVar(&speed, "speed", "", "simulated time per tick ("+speedNames()+")")
	cmd.Flags().StringVar(&window, "window", "", "only show part of the history ("+windowNames()+")")
	cmd.Flags().BoolVar(&instant, "instant", false, "run to completion without waiting between ticks")
	return cmd
}

// runLive drives a wall-clock simulator and echoes each sampled year. A
// cancelled context stops the run and returns the partial outcome.
func runLive(ctx context.Context, logger *zap.SugaredLogger, out io.Writer, plan *domain.Plan) (domain.LifeStageOutcome, error) {
	var mu sync.Mutex
	sim := simulation.New(
		simulation.WithSpeed(plan.Simulation.Speed),
		simulation.WithLogger(logger),
		simulation.WithObserver(func(u simulation.Update) {
			if u.Sampled == nil {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			printPoint(out, *u.Sampled)
		}),
	)
	defer sim.Close()

	if err := sim.Start(plan.Profile); err != nil {
		return domain.LifeStageOutcome{}, err
	}
	if _, err := sim.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return domain.LifeStageOutcome{}, err
	}
	if err := sim.Pause(); err == nil {
		logger.Infof("simulation interrupted at age %.2f", sim.Progress().CurrentAge)
	}
	outcome := sim.Outcome()
	if stats, err := simulation.Analyze(outcome.Seed, outcome.History); err == nil {
		outcome.Stats = &stats
	}
	return outcome, nil
}

func speedNames() string {
	names := make([]string, 0, len(domain.AllSpeeds()))
	for _, s := range domain.AllSpeeds() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func windowNames() string {
	names := make([]string, 0, len(simulation.AllWindows()))
	for _, w := range simulation.AllWindows() {
		names = append(names, string(w))
	}
	return strings.Join(names, ", ")
}

func printPoint(w io.Writer, p domain.HistoricalDataPoint) {
	fmt.Fprintf(w, "age %3d  salary %14s  investments %16s  debt %14s  net worth %16s\n",
		p.Age,
		output.FormatCurrency(p.Salary),
		output.FormatCurrency(p.Investments),
		output.FormatCurrency(p.Debt),
		output.FormatCurrency(p.NetWorth))
}

func printOutcome(w io.Writer, o domain.LifeStageOutcome, withHistory bool) error {
	if withHistory {
		for _, p := range o.History {
			printPoint(w, p)
		}
	}
	fmt.Fprintf(w, "\nstatus %s at age %s (%d years, %d months, %d days simulated)\n",
		o.Status, output.FormatAge(o.Progress.CurrentAge),
		o.Progress.YearsElapsed, o.Progress.MonthsElapsed, o.Progress.DaysElapsed)
	fmt.Fprintf(w, "final net worth %s, remaining debt %s\n",
		output.FormatCurrency(o.State.NetWorth), output.FormatCurrency(o.State.RemainingDebt))
	if o.Stats == nil {
		return nil
	}
	if o.Stats.DebtFreeAge != nil {
		fmt.Fprintf(w, "debt free at age %s\n", output.FormatAge(*o.Stats.DebtFreeAge))
	}
	if o.Stats.NetWorthBreakEven != nil {
		fmt.Fprintf(w, "net worth turns positive at age %s\n", output.FormatAge(*o.Stats.NetWorthBreakEven))
	}
	_, err := fmt.Fprintf(w, "peak net worth %s at age %d\n",
		output.FormatCurrency(o.Stats.PeakNetWorth), o.Stats.PeakNetWorthAge)
	return err
}
