package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/projection-engine/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"age":    FormatAge,
	"months": FormatMonths,
	"total":  domain.TotalBalance,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the trajectory data handed to the inline chart script.
type chartSeries struct {
	Labels []int     `json:"labels"`
	Values []float64 `json:"values"`
}

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer

	var growth, netWorth chartSeries
	for _, s := range report.Growth {
		growth.Labels = append(growth.Labels, s.Year)
		growth.Values = append(growth.Values, s.Balance.InexactFloat64())
	}
	if report.HasLifeStage() {
		for _, p := range report.LifeStage.History {
			netWorth.Labels = append(netWorth.Labels, p.Age)
			netWorth.Values = append(netWorth.Values, p.NetWorth.InexactFloat64())
		}
	}

	var results []domain.StrategyResult
	var best domain.Strategy
	if report.HasDebts() {
		results = report.Comparison.Results()
		best = report.Comparison.Best().Strategy
	}

	data := struct {
		*domain.ProjectionReport
		Results        []domain.StrategyResult
		Best           domain.Strategy
		Recommendation Recommendation
		Assumptions    []string
		GrowthChart    chartSeries
		NetWorthChart  chartSeries
	}{report, results, best, AnalyzeReport(report), assumptionsFor(report), growth, netWorth}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
