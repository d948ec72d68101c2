package domain

import "github.com/shopspring/decimal"

// InvestmentInputs are the fixed assumptions of a compound growth projection.
// AnnualReturnPercent is a percentage (7 means 7%).
type InvestmentInputs struct {
	InitialAmount       decimal.Decimal `yaml:"initial_amount" json:"initial_amount"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnPercent decimal.Decimal `yaml:"annual_return_percent" json:"annual_return_percent"`
	TimeHorizonYears    int             `yaml:"time_horizon_years" json:"time_horizon_years"`
}

// YearlySnapshot is the end-of-year state of a growth projection. Year 0 is the initial state.
type YearlySnapshot struct {
	Year                    int             `json:"year"`
	Balance                 decimal.Decimal `json:"balance"`
	ContributionsThisYear   decimal.Decimal `json:"contributions_this_year"`
	Earnings                decimal.Decimal `json:"earnings"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
}

// GrowthSummary is the aggregate result taken from the final yearly snapshot
type GrowthSummary struct {
	TotalBalance       decimal.Decimal `json:"total_balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
}
