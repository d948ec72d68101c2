package main

import (
	"fmt"

	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/config"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
)

func main() {
	plan := config.NewInputParser().DefaultPlan()
	ae := calculation.NewAmortizationEngine()

	for _, s := range domain.AllStrategies() {
		res, err := ae.Simulate(plan.Debts, s, plan.ExtraPayment)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %d months, interest %s\n", s, res.Months, res.TotalInterest.StringFixed(2))
		for i, m := range res.MonthlyData {
			if i == 12 {
				break
			}
			fmt.Printf("  month %3d  payment %10s  interest %8s  balance %10s\n", m.Month, m.Payment.StringFixed(2), m.Interest.StringFixed(2), m.Balance.StringFixed(2))
		}
	}

	// Growth with and without contributions
	ge := calculation.NewCompoundGrowthEngine()
	for _, monthly := range []decimal.Decimal{decimal.Zero, plan.Investment.MonthlyContribution} {
		in := plan.Investment
		in.MonthlyContribution = monthly
		snaps, err := ge.Project(in)
		if err != nil {
			panic(err)
		}
		last := snaps[len(snaps)-1]
		fmt.Printf("\nmonthly %s: year %d balance %s earnings %s\n", monthly.StringFixed(2), last.Year, last.Balance.StringFixed(2), last.Earnings.StringFixed(2))
	}
}
