package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/projection-engine/internal/config"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand.
type app struct {
	planFile  string
	logLevel  string
	outputDir string

	settings config.Settings
	logger   *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "projector",
		Short:         "Debt payoff, investment growth and life stage projections",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.planFile, "config", "c", "", "plan file (YAML); the built-in example plan is used when empty")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides PROJECTOR_LOG_LEVEL")
	root.PersistentFlags().StringVarP(&a.outputDir, "output-dir", "o", "", "directory for report files; overrides PROJECTOR_OUTPUT_DIR")

	root.AddCommand(
		newDebtsCmd(a),
		newGrowthCmd(a),
		newLifeStageCmd(a),
		newReportCmd(a),
		newInitCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		settings.LogLevel = a.logLevel
	}
	if a.outputDir != "" {
		settings.OutputDir = a.outputDir
	}
	logger, err := logging.New(settings)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))
	return nil
}

// loadPlan reads --config, or the built-in example plan.
func (a *app) loadPlan(logger *zap.SugaredLogger) (*domain.Plan, error) {
	parser := config.NewInputParser()
	if a.planFile == "" {
		plan := parser.DefaultPlan()
		if speed, err := domain.ParseSpeed(a.settings.Speed); err == nil {
			plan.Simulation.Speed = speed
		}
		return plan, nil
	}
	plan, err := parser.LoadFromFile(a.planFile)
	if err != nil {
		return nil, err
	}
	logger.Debugf("loaded plan %q from %s (%d debts)", plan.Name, a.planFile, len(plan.Debts))
	return plan, nil
}

// decimalFlag parses a decimal flag value, naming the flag on error.
func decimalFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %w: %q is not a number", name, domain.ErrInvalidInput, value)
	}
	return d, nil
}
