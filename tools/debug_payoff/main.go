package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/config"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_payoff <plan-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	plan, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunDebts(context.Background(), plan)
	if err != nil {
		panic(err)
	}
	if res == nil {
		fmt.Println("no debts")
		return
	}

	results := res.Results()
	minLen := -1
	for _, r := range results {
		if minLen == -1 || len(r.MonthlyData) < minLen {
			minLen = len(r.MonthlyData)
		}
	}

	// Header
	header := "Month"
	for _, r := range results {
		header += fmt.Sprintf(",%s_Balance,%s_Payment,%s_Interest", r.Strategy, r.Strategy, r.Strategy)
	}
	fmt.Println(header)

	for idx := 0; idx < minLen; idx++ {
		row := fmt.Sprintf("%d", results[0].MonthlyData[idx].Month)
		for _, r := range results {
			m := r.MonthlyData[idx]
			row += fmt.Sprintf(",%s,%s,%s", m.Balance.StringFixed(2), m.Payment.StringFixed(2), m.Interest.StringFixed(2))
		}
		fmt.Println(row)
	}

	// Month at which each strategy has repaid half of the starting balance
	total := decimal.Zero
	for _, d := range plan.Debts {
		total = total.Add(d.Balance)
	}
	half := total.Div(decimal.NewFromInt(2))
	for _, r := range results {
		points := make([]calc.SeriesPoint, 0, len(r.MonthlyData))
		for _, m := range r.MonthlyData {
			points = append(points, calc.SeriesPoint{X: float64(m.Month), Y: total.Sub(m.Balance)})
		}
		c, ok := calc.FirstCrossing(points, half)
		fmt.Printf("\n%s: months=%d interest=%s halfway=%+v found=%v", r.Strategy, r.Months, r.TotalInterest.StringFixed(2), c, ok)
	}
	fmt.Println()
}
