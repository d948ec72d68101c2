package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/projection-engine/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.HasDebts() {
		fmt.Fprintf(&buf, "Debt: %s across %d debts, extra %s/month\n", FormatCurrency(domain.TotalBalance(report.Debts)), len(report.Debts), FormatCurrency(report.ExtraPayment))
		for _, r := range report.Comparison.Results() {
			fmt.Fprintf(&buf, "%s: Months=%d Interest=%s Paid=%s Saved=%s\n",
				r.Strategy, r.Months, FormatCurrency(r.TotalInterest), FormatCurrency(r.TotalPaid), FormatCurrency(r.MonthlySavingsVsMinimum))
		}
	}
	if report.GrowthSummary != nil {
		fmt.Fprintf(&buf, "Growth: Balance=%s Contributions=%s Earnings=%s\n",
			FormatCurrency(report.GrowthSummary.TotalBalance), FormatCurrency(report.GrowthSummary.TotalContributions), FormatCurrency(report.GrowthSummary.TotalEarnings))
	}
	if last, ok := report.FinalHistory(); ok {
		fmt.Fprintf(&buf, "Life stage: age %d NetWorth=%s Investments=%s Debt=%s\n", last.Age, FormatCurrency(last.NetWorth), FormatCurrency(last.Investments), FormatCurrency(last.Debt))
	}
	rec := AnalyzeReport(report)
	if rec.Strategy != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (saves %s / %d months)\n", rec.Strategy, FormatCurrency(rec.InterestSaved), rec.MonthsSaved)
	}
	return buf.Bytes(), nil
}
