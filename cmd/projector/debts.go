package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/internal/logging"
	"github.com/rpgo/projection-engine/internal/output"
	"github.com/rpgo/projection-engine/internal/report"
	"github.com/spf13/cobra"
)

func newDebtsCmd(a *app) *cobra.Command {
	var (
		extra    string
		format   string
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Compare minimum, snowball and avalanche repayment of the plan's debts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var only domain.Strategy
			if strategy != "" {
				s, err := domain.ParseStrategy(strategy)
				if err != nil {
					return err
				}
				only = s
			}

			logger := logging.FromContext(cmd.Context())
			plan, err := a.loadPlan(logger)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("extra") {
				if plan.ExtraPayment, err = decimalFlag("extra", extra); err != nil {
					return err
				}
			}
			plan.Investment = domain.InvestmentInputs{}

			b := report.NewBuilder(logger)
			b.SkipLifeStage = true
			rep, err := b.Build(cmd.Context(), plan)
			if err != nil {
				return err
			}
			if only != "" {
				result, _ := rep.Comparison.Get(only)
				return printSchedule(cmd.OutOrStdout(), result)
			}
			return output.Render(cmd.OutOrStdout(), rep, format)
		},
	}
	cmd.Flags().StringVar(&extra, "extra", "0", "extra monthly payment on top of the minimums")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, console-lite, csv, schedule-csv, json)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "print the monthly schedule of one strategy ("+strategyNames()+") instead of the comparison")
	return cmd
}

func strategyNames() string {
	names := make([]string, 0, len(domain.AllStrategies()))
	for _, s := range domain.AllStrategies() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// printSchedule writes the stored months of r, then its totals.
func printSchedule(w io.Writer, r domain.StrategyResult) error {
	fmt.Fprintf(w, "%s schedule\n", r.Strategy)
	fmt.Fprintf(w, "%6s %14s %12s %16s\n", "Month", "Payment", "Interest", "Balance")
	for _, m := range r.MonthlyData {
		fmt.Fprintf(w, "%6d %14s %12s %16s\n", m.Month,
			output.FormatCurrency(m.Payment), output.FormatCurrency(m.Interest), output.FormatCurrency(m.Balance))
	}
	if len(r.MonthlyData) < r.Months {
		fmt.Fprintf(w, "... %d more months not shown\n", r.Months-len(r.MonthlyData))
	}
	_, err := fmt.Fprintf(w, "months %d, total paid %s, total interest %s\n",
		r.Months, output.FormatCurrency(r.TotalPaid), output.FormatCurrency(r.TotalInterest))
	return err
}
