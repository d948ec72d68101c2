package output

import (
	"github.com/gocarina/gocsv"
	"github.com/rpgo/projection-engine/internal/domain"
)

// Row types keep CSV columns stable and render money with two decimals.

type strategyRow struct {
	Strategy         string `csv:"Strategy"`
	ExtraPayment     string `csv:"ExtraPayment"`
	Months           string `csv:"Months"`
	TotalPaid        string `csv:"TotalPaid"`
	TotalInterest    string `csv:"TotalInterest"`
	SavingsVsMinimum string `csv:"SavingsVsMinimum"`
	RemainingBalance string `csv:"RemainingBalance"`
	ReachedCutoff    string `csv:"ReachedCutoff"`
}

type scheduleRow struct {
	Strategy string `csv:"Strategy"`
	Month    string `csv:"Month"`
	Balance  string `csv:"Balance"`
	Payment  string `csv:"Payment"`
	Interest string `csv:"Interest"`
}

type growthRow struct {
	Year                    string `csv:"Year"`
	Balance                 string `csv:"Balance"`
	ContributionsThisYear   string `csv:"ContributionsThisYear"`
	Earnings                string `csv:"Earnings"`
	CumulativeContributions string `csv:"CumulativeContributions"`
}

type historyRow struct {
	Age         string `csv:"Age"`
	NetWorth    string `csv:"NetWorth"`
	Salary      string `csv:"Salary"`
	Investments string `csv:"Investments"`
	Debt        string `csv:"Debt"`
}

// CSVSummarizer implements the strategy summary CSV output (one row per strategy).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	rows := []strategyRow{}
	if report.HasDebts() {
		for _, r := range report.Comparison.Results() {
			rows = append(rows, strategyRow{
				Strategy:         string(r.Strategy),
				ExtraPayment:     r.ExtraPayment.StringFixed(2),
				Months:           intToString(r.Months),
				TotalPaid:        r.TotalPaid.StringFixed(2),
				TotalInterest:    r.TotalInterest.StringFixed(2),
				SavingsVsMinimum: r.MonthlySavingsVsMinimum.StringFixed(2),
				RemainingBalance: r.RemainingBalance.StringFixed(2),
				ReachedCutoff:    boolToString(r.ReachedCutoff),
			})
		}
	}
	return gocsv.MarshalBytes(&rows)
}

// CSVScheduleExporter exports the recorded monthly schedule of every strategy.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string      { return "schedule-csv" }
func (c CSVScheduleExporter) Extension() string { return "csv" }

func (c CSVScheduleExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	rows := []scheduleRow{}
	if report.HasDebts() {
		for _, r := range report.Comparison.Results() {
			for _, m := range r.MonthlyData {
				rows = append(rows, scheduleRow{
					Strategy: string(r.Strategy),
					Month:    intToString(m.Month),
					Balance:  m.Balance.StringFixed(2),
					Payment:  m.Payment.StringFixed(2),
					Interest: m.Interest.StringFixed(2),
				})
			}
		}
	}
	return gocsv.MarshalBytes(&rows)
}

// CSVGrowthExporter exports the yearly growth snapshots.
type CSVGrowthExporter struct{}

func (c CSVGrowthExporter) Name() string      { return "growth-csv" }
func (c CSVGrowthExporter) Extension() string { return "csv" }

func (c CSVGrowthExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	rows := make([]growthRow, 0, len(report.Growth))
	for _, s := range report.Growth {
		rows = append(rows, growthRow{
			Year:                    intToString(s.Year),
			Balance:                 s.Balance.StringFixed(2),
			ContributionsThisYear:   s.ContributionsThisYear.StringFixed(2),
			Earnings:                s.Earnings.StringFixed(2),
			CumulativeContributions: s.CumulativeContributions.StringFixed(2),
		})
	}
	return gocsv.MarshalBytes(&rows)
}

// CSVHistoryExporter exports the sampled life-stage trajectory.
type CSVHistoryExporter struct{}

func (c CSVHistoryExporter) Name() string      { return "history-csv" }
func (c CSVHistoryExporter) Extension() string { return "csv" }

func (c CSVHistoryExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	rows := []historyRow{}
	if report.HasLifeStage() {
		for _, p := range report.LifeStage.History {
			rows = append(rows, historyRow{
				Age:         intToString(p.Age),
				NetWorth:    p.NetWorth.StringFixed(2),
				Salary:      p.Salary.StringFixed(2),
				Investments: p.Investments.StringFixed(2),
				Debt:        p.Debt.StringFixed(2),
			})
		}
	}
	return gocsv.MarshalBytes(&rows)
}
