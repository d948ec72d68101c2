package main

import (
	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/logging"
	"github.com/rpgo/projection-engine/internal/output"
	"github.com/rpgo/projection-engine/internal/report"
	"github.com/spf13/cobra"
)

func newGrowthCmd(a *app) *cobra.Command {
	var (
		initial, monthly, annualReturn string
		years                          int
		format                         string
	)
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project an investment balance year by year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())
			plan, err := a.loadPlan(logger)
			if err != nil {
				return err
			}
			in := &plan.Investment
			flags := cmd.Flags()
			if flags.Changed("initial") {
				if in.InitialAmount, err = decimalFlag("initial", initial); err != nil {
					return err
				}
			}
			if flags.Changed("monthly") {
				if in.MonthlyContribution, err = decimalFlag("monthly", monthly); err != nil {
					return err
				}
			}
			if flags.Changed("return") {
				if in.AnnualReturnPercent, err = decimalFlag("return", annualReturn); err != nil {
					return err
				}
			}
			if flags.Changed("years") {
				in.TimeHorizonYears = years
			}
			if err := calculation.ValidateInvestment(*in); err != nil {
				return err
			}
			plan.Debts = nil

			b := report.NewBuilder(logger)
			b.SkipLifeStage = true
			rep, err := b.Build(cmd.Context(), plan)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), rep, format)
		},
	}
	cmd.Flags().StringVar(&initial, "initial", "", "initial amount")
	cmd.Flags().StringVar(&monthly, "monthly", "", "monthly contribution")
	cmd.Flags().StringVar(&annualReturn, "return", "", "annual return in percent (7 means 7%)")
	cmd.Flags().IntVar(&years, "years", 0, "time horizon in years")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, growth-csv, json)")
	return cmd
}
