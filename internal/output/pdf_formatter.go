package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/projection-engine/internal/domain"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders the report as an A4 PDF document.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

type pdfReport struct {
	pdf    *fpdf.Fpdf
	report *domain.ProjectionReport
}

func (p PDFFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), report: report}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle(pdfText("Projection Report "+report.Name), false)

	r.addTitlePage()
	if report.HasDebts() {
		r.addStrategyPage()
	}
	if report.HasGrowth() {
		r.addGrowthPage()
	}
	if report.HasLifeStage() {
		r.addLifeStagePage()
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfText keeps to the Latin-1 range of the standard PDF fonts.
func pdfText(s string) string {
	return strings.NewReplacer("•", "-", "—", "-", "≥", ">=").Replace(s)
}

func (r *pdfReport) heading(text string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 9, pdfText(text), "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
	r.pdf.SetTextColor(0, 0, 0)
}

// table draws a header row and body rows; the first column is left-aligned.
func (r *pdfReport) table(widths []float64, header []string, rows [][]string) {
	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(245, 247, 250)
	for i, h := range header {
		r.pdf.CellFormat(widths[i], 7, pdfText(h), "1", 0, align(i), true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			r.pdf.CellFormat(widths[i], 6, pdfText(cell), "1", 0, align(i), false, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.Ln(3)
}

func align(col int) string {
	if col == 0 {
		return "L"
	}
	return "R"
}

func (r *pdfReport) addTitlePage() {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(30)
	r.pdf.CellFormat(contentWidth, 15, "Projection Report", "", 1, "C", false, 0, "")
	if r.report.Name != "" {
		r.pdf.SetFont("Arial", "", 16)
		r.pdf.CellFormat(contentWidth, 10, pdfText(r.report.Name), "", 1, "C", false, 0, "")
	}
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(100, 100, 100)
	r.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Generated: %s", r.report.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(15)

	r.heading("Key Assumptions")
	r.pdf.SetFont("Arial", "", 10)
	for _, a := range assumptionsFor(r.report) {
		r.pdf.MultiCell(contentWidth, 5, pdfText("- "+a), "", "L", false)
	}

	rec := AnalyzeReport(r.report)
	if len(rec.Notes) > 0 {
		r.pdf.Ln(5)
		r.heading("Recommendations")
		r.pdf.SetFont("Arial", "", 10)
		for _, n := range rec.Notes {
			r.pdf.MultiCell(contentWidth, 5, pdfText("- "+n), "", "L", false)
		}
	}
}

func (r *pdfReport) addStrategyPage() {
	r.pdf.AddPage()
	r.heading("Debts")
	var debts [][]string
	for _, d := range r.report.Debts {
		debts = append(debts, []string{d.Label(), FormatCurrency(d.Balance), FormatPercentage(d.InterestRate), FormatCurrency(d.MinimumPayment)})
	}
	debts = append(debts, []string{"Total", FormatCurrency(domain.TotalBalance(r.report.Debts)), "", ""})
	r.table([]float64{75, 40, 30, 35}, []string{"Debt", "Balance", "APR", "Minimum"}, debts)

	r.heading("Strategy Comparison")
	var rows [][]string
	for _, res := range r.report.Comparison.Results() {
		months := intToString(res.Months)
		if res.ReachedCutoff {
			months += "+"
		}
		rows = append(rows, []string{string(res.Strategy), months, FormatCurrency(res.TotalPaid), FormatCurrency(res.TotalInterest), FormatCurrency(res.MonthlySavingsVsMinimum)})
	}
	r.table([]float64{30, 20, 45, 45, 40}, []string{"Strategy", "Months", "Total Paid", "Total Interest", "Saved vs Min"}, rows)
}

func (r *pdfReport) addGrowthPage() {
	r.pdf.AddPage()
	r.heading("Investment Growth")
	var rows [][]string
	for _, s := range r.report.Growth {
		rows = append(rows, []string{intToString(s.Year), FormatCurrency(s.Balance), FormatCurrency(s.ContributionsThisYear), FormatCurrency(s.CumulativeContributions), FormatCurrency(s.Earnings)})
	}
	r.table([]float64{20, 40, 40, 40, 40}, []string{"Year", "Balance", "Contributed", "Cumulative", "Earnings"}, rows)
}

func (r *pdfReport) addLifeStagePage() {
	ls := r.report.LifeStage
	r.pdf.AddPage()
	r.heading("Life Stage Simulation")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Age %s to %s at %s speed (%s)", FormatAge(ls.Seed.Age), FormatAge(ls.Progress.CurrentAge), ls.Speed, ls.Status), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)
	var rows [][]string
	for _, p := range ls.History {
		rows = append(rows, []string{intToString(p.Age), FormatCurrency(p.NetWorth), FormatCurrency(p.Salary), FormatCurrency(p.Investments), FormatCurrency(p.Debt)})
	}
	r.table([]float64{20, 40, 40, 40, 40}, []string{"Age", "Net Worth", "Salary", "Investments", "Debt"}, rows)
}
