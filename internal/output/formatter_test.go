package output

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/internal/simulation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReport(t *testing.T) *domain.ProjectionReport {
	t.Helper()
	plan := &domain.Plan{
		Name: "Fixture",
		Debts: []domain.Debt{
			{ID: "card", Name: "Card", Balance: decimal.NewFromInt(5000), InterestRate: decimal.NewFromFloat(22.9), MinimumPayment: decimal.NewFromInt(150)},
			{ID: "car", Name: "Car", Balance: decimal.NewFromInt(2500), InterestRate: decimal.NewFromFloat(6.5), MinimumPayment: decimal.NewFromInt(100)},
		},
		ExtraPayment: decimal.NewFromInt(200),
		Investment: domain.InvestmentInputs{
			InitialAmount:       decimal.NewFromInt(10000),
			MonthlyContribution: decimal.NewFromInt(500),
			AnnualReturnPercent: decimal.NewFromInt(7),
			TimeHorizonYears:    15,
		},
	}
	report, err := calculation.NewCalculationEngine().RunPlan(context.Background(), plan)
	require.NoError(t, err)
	report.GeneratedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	outcome, err := simulation.RunInstant(context.Background(), domain.PersonalFinancialData{
		Age:           84,
		CurrentSalary: decimal.NewFromInt(50000),
		Investments:   decimal.NewFromInt(1000),
		DebtAmount:    decimal.NewFromInt(8000),
	}, domain.SpeedYear, nil)
	require.NoError(t, err)
	report.LifeStage = &outcome
	return report
}

func TestConsoleLiteFormatter(t *testing.T) {
	f := ConsoleFormatter{}
	out, err := f.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "Recommended: avalanche") {
		t.Fatalf("expected recommendation for avalanche, got: %s", content)
	}
	if !strings.Contains(content, "Life stage: age 90") {
		t.Fatalf("expected final life stage line, got: %s", content)
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	f := ConsoleVerboseFormatter{}
	out, err := f.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"STRATEGY COMPARISON", "INVESTMENT GROWTH", "LIFE STAGE SIMULATION", "RECOMMENDATIONS", "$7,500.00"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in verbose output", want)
		}
	}
}

func TestConsoleFormatters_EmptyReport(t *testing.T) {
	empty := &domain.ProjectionReport{}
	for _, f := range []Formatter{ConsoleFormatter{}, ConsoleVerboseFormatter{}, CSVSummarizer{}, CSVScheduleExporter{}, CSVGrowthExporter{}, CSVHistoryExporter{}, HTMLFormatter{}, JSONFormatter{}, PDFFormatter{}} {
		_, err := f.Format(empty)
		assert.NoError(t, err, f.Name())
	}
}

func TestCSVSummarizerRows(t *testing.T) {
	f := CSVSummarizer{}
	out, err := f.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header+3 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "minimum,") || !strings.HasPrefix(lines[2], "snowball,") || !strings.HasPrefix(lines[3], "avalanche,") {
		t.Fatalf("rows not in strategy order: %v", lines)
	}
}

func TestCSVScheduleExporterCapsRows(t *testing.T) {
	report := buildTestReport(t)
	out, err := CSVScheduleExporter{}.Format(report)
	require.NoError(t, err)

	want := 1
	for _, r := range report.Comparison.Results() {
		want += len(r.MonthlyData)
		assert.LessOrEqual(t, len(r.MonthlyData), domain.MonthlyDataLimit)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Len(t, lines, want)
}

func TestCSVGrowthAndHistory(t *testing.T) {
	report := buildTestReport(t)

	out, err := CSVGrowthExporter{}.Format(report)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "0,10000.00,0.00,0.00,10000.00", lines[1])

	out, err = CSVHistoryExporter{}.Format(report)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[6], "90,"))
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_schedule", "csv_schedule.golden", CSVScheduleExporter{}},
		{"csv_history", "csv_history.golden", CSVHistoryExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
	}

	report := buildTestReport(t)
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(report)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			// only first line to keep golden small & stable
			line := firstLine(string(out)) + "\n"
			if err := os.WriteFile(goldenPath, []byte(line), 0644); err != nil {
				t.Fatalf("%s: update golden failed: %v", tc.name, err)
			}
		}
		data, err := os.ReadFile(goldenPath)
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func TestHTMLFormatterSections(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"Strategy Comparison", "Investment Growth", "Life Stage Simulation", "Key Assumptions", `class="best"`, "$7,500.00"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in HTML output", want)
		}
	}
}

func TestHTMLAssumptionsFallback(t *testing.T) {
	out, err := HTMLFormatter{}.Format(&domain.ProjectionReport{})
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	found := false
	for _, a := range DefaultAssumptions {
		if strings.Contains(string(out), a) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected at least one default assumption to be rendered in HTML")
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	report := buildTestReport(t)
	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded domain.ProjectionReport
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, report.ID, decoded.ID)
	require.NotNil(t, decoded.Comparison)
	assert.True(t, report.Comparison.Avalanche.TotalInterest.Equal(decoded.Comparison.Avalanche.TotalInterest))
	require.NotNil(t, decoded.LifeStage)
	assert.Len(t, decoded.LifeStage.History, 6)
}

func TestPDFFormatter(t *testing.T) {
	out, err := PDFFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF header")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	f := GetFormatterByName("console-verbose")
	if f == nil {
		t.Fatalf("alias console-verbose did not resolve to a formatter")
	}
	if f.Name() != "console" {
		t.Fatalf("alias resolved to %q, want 'console'", f.Name())
	}
	if f := GetFormatterByName(" AMORTIZATION "); f == nil || f.Name() != "schedule-csv" {
		t.Fatalf("alias amortization did not resolve to schedule-csv")
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := GenerateReport(&domain.ProjectionReport{}, "definitely-not-a-format", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}

func TestAvailableFormatterNamesSorted(t *testing.T) {
	names := AvailableFormatterNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "pdf")
	assert.Contains(t, AvailableFormatAliases(), "verbose")
}
