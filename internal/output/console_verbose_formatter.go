package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/projection-engine/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DEBT, GROWTH AND LIFE STAGE PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	if report.Name != "" {
		fmt.Fprintf(&buf, "Plan: %s\n", report.Name)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if report.HasDebts() {
		writeDebtSection(&buf, report)
	}
	if report.HasGrowth() {
		writeGrowthSection(&buf, report)
	}
	if report.HasLifeStage() {
		writeLifeStageSection(&buf, report.LifeStage)
	}

	rec := AnalyzeReport(report)
	if len(rec.Notes) > 0 {
		fmt.Fprintln(&buf, "RECOMMENDATIONS")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		for _, n := range rec.Notes {
			fmt.Fprintf(&buf, "• %s\n", n)
		}
	}
	return buf.Bytes(), nil
}

func writeDebtSection(buf *bytes.Buffer, report *domain.ProjectionReport) {
	fmt.Fprintln(buf, "DEBTS")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	for _, d := range report.Debts {
		fmt.Fprintf(buf, "  %-24s %14s  %6s%% APR  min %s\n", d.Label(), FormatCurrency(d.Balance), d.InterestRate.StringFixed(2), FormatCurrency(d.MinimumPayment))
	}
	fmt.Fprintf(buf, "  %-24s %14s\n", "Total", FormatCurrency(domain.TotalBalance(report.Debts)))
	fmt.Fprintf(buf, "  Extra monthly payment: %s\n", FormatCurrency(report.ExtraPayment))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "STRATEGY COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	fmt.Fprintf(buf, "  %-10s %8s %16s %16s %16s\n", "Strategy", "Months", "Total Paid", "Total Interest", "Saved vs Min")
	for _, r := range report.Comparison.Results() {
		months := intToString(r.Months)
		if r.ReachedCutoff {
			months += "+"
		}
		fmt.Fprintf(buf, "  %-10s %8s %16s %16s %16s\n", r.Strategy, months, FormatCurrency(r.TotalPaid), FormatCurrency(r.TotalInterest), FormatCurrency(r.MonthlySavingsVsMinimum))
	}
	fmt.Fprintln(buf)

	for _, r := range report.Comparison.Results() {
		if len(r.PayoffOrder) == 0 {
			continue
		}
		fmt.Fprintf(buf, "  %s payoff order:\n", strings.ToUpper(string(r.Strategy)))
		for i, p := range r.PayoffOrder {
			when := "not paid off"
			if p.Month > 0 {
				when = "month " + intToString(p.Month)
			}
			fmt.Fprintf(buf, "    %d. %-24s %s\n", i+1, p.Name, when)
		}
	}
	fmt.Fprintln(buf)
}

func writeGrowthSection(buf *bytes.Buffer, report *domain.ProjectionReport) {
	in := report.Investment
	fmt.Fprintln(buf, "INVESTMENT GROWTH")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Initial: %s  Monthly: %s  Return: %s  Horizon: %d years\n",
		FormatCurrency(in.InitialAmount), FormatCurrency(in.MonthlyContribution), FormatPercentage(in.AnnualReturnPercent), in.TimeHorizonYears)
	fmt.Fprintf(buf, "  %4s %16s %16s %16s %16s\n", "Year", "Balance", "Contributed", "Cumulative", "Earnings")
	for _, s := range report.Growth {
		fmt.Fprintf(buf, "  %4d %16s %16s %16s %16s\n", s.Year, FormatCurrency(s.Balance), FormatCurrency(s.ContributionsThisYear), FormatCurrency(s.CumulativeContributions), FormatCurrency(s.Earnings))
	}
	if report.GrowthSummary != nil {
		fmt.Fprintf(buf, "  Final balance %s = contributions %s + earnings %s\n",
			FormatCurrency(report.GrowthSummary.TotalBalance), FormatCurrency(report.GrowthSummary.TotalContributions), FormatCurrency(report.GrowthSummary.TotalEarnings))
	}
	fmt.Fprintln(buf)
}

func writeLifeStageSection(buf *bytes.Buffer, ls *domain.LifeStageOutcome) {
	fmt.Fprintln(buf, "LIFE STAGE SIMULATION")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Start age %s, speed %s, status %s, now age %s\n", FormatAge(ls.Seed.Age), ls.Speed, ls.Status, FormatAge(ls.Progress.CurrentAge))
	fmt.Fprintf(buf, "  %4s %16s %16s %16s %16s\n", "Age", "Net Worth", "Salary", "Investments", "Debt")
	for _, p := range ls.History {
		fmt.Fprintf(buf, "  %4d %16s %16s %16s %16s\n", p.Age, FormatCurrency(p.NetWorth), FormatCurrency(p.Salary), FormatCurrency(p.Investments), FormatCurrency(p.Debt))
	}
	if s := ls.Stats; s != nil && s.Samples > 0 {
		fmt.Fprintf(buf, "  Yearly net worth change: mean %s, median %s, std dev %s\n", FormatCurrency(s.MeanChange), FormatCurrency(s.MedianChange), FormatCurrency(s.StdDevChange))
		fmt.Fprintf(buf, "  Peak net worth %s at age %d\n", FormatCurrency(s.PeakNetWorth), s.PeakNetWorthAge)
	}
	fmt.Fprintln(buf)
}
