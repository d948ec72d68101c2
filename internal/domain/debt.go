package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxAmortizationMonths is the hard cutoff of a repayment simulation (50 years).
	MaxAmortizationMonths = 600
	// MonthlyDataLimit caps the per-month schedule kept for presentation (10 years).
	MonthlyDataLimit = 120
)

// Strategy selects how extra payment capacity is directed across debts
type Strategy string

const (
	StrategyMinimum   Strategy = "minimum"
	StrategySnowball  Strategy = "snowball"
	StrategyAvalanche Strategy = "avalanche"
)

// AllStrategies returns every supported strategy in comparison order.
func AllStrategies() []Strategy {
	return []Strategy{StrategyMinimum, StrategySnowball, StrategyAvalanche}
}

// Valid reports whether s is a supported strategy
func (s Strategy) Valid() bool {
	switch s {
	case StrategyMinimum, StrategySnowball, StrategyAvalanche:
		return true
	}
	return false
}

// ParseStrategy resolves a user-supplied strategy name (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, name)
	}
	return s, nil
}

// Debt is a single balance being repaid. InterestRate is an annual percentage (e.g. 19.99).
type Debt struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	Balance        decimal.Decimal `yaml:"balance" json:"balance"`
	InterestRate   decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`
	MinimumPayment decimal.Decimal `yaml:"minimum_payment" json:"minimum_payment"`
}

// MonthlyRate returns the periodic (monthly) interest rate as a fraction.
func (d Debt) MonthlyRate() decimal.Decimal {
	return d.InterestRate.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
}

// Label returns the name if set, otherwise the id
func (d Debt) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// CloneDebts returns an independently owned copy of debts.
func CloneDebts(debts []Debt) []Debt {
	if debts == nil {
		return nil
	}
	out := make([]Debt, len(debts))
	copy(out, debts)
	return out
}

// TotalBalance sums the balances of debts.
func TotalBalance(debts []Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Balance)
	}
	return total
}

// MonthlySnapshot aggregates one simulated repayment period across all debts
type MonthlySnapshot struct {
	Month    int             `json:"month"`
	Balance  decimal.Decimal `json:"balance"`
	Payment  decimal.Decimal `json:"payment"`
	Interest decimal.Decimal `json:"interest"`
}

// DebtPayoff records when a debt reached a zero balance. Month is 0 when it never did.
type DebtPayoff struct {
	DebtID string `json:"debt_id"`
	Name   string `json:"name"`
	Month  int    `json:"month"`
}

// StrategyResult is the outcome of simulating one repayment strategy
type StrategyResult struct {
	Strategy                Strategy          `json:"strategy"`
	ExtraPayment            decimal.Decimal   `json:"extra_payment"`
	Months                  int               `json:"months"`
	TotalPaid               decimal.Decimal   `json:"total_paid"`
	TotalInterest           decimal.Decimal   `json:"total_interest"`
	MonthlySavingsVsMinimum decimal.Decimal   `json:"monthly_savings_vs_minimum"`
	RemainingBalance        decimal.Decimal   `json:"remaining_balance"`
	ReachedCutoff           bool              `json:"reached_cutoff"`
	PayoffOrder             []DebtPayoff      `json:"payoff_order"`
	MonthlyData             []MonthlySnapshot `json:"monthly_data"`
}

// PaidOff reports whether every debt reached a zero balance before the cutoff.
func (r StrategyResult) PaidOff() bool {
	return !r.ReachedCutoff
}

// StrategyComparison holds one result per supported strategy.
type StrategyComparison struct {
	ExtraPayment decimal.Decimal `json:"extra_payment"`
	Minimum      StrategyResult  `json:"minimum"`
	Snowball     StrategyResult  `json:"snowball"`
	Avalanche    StrategyResult  `json:"avalanche"`
}

// Get returns the result for s.
func (c *StrategyComparison) Get(s Strategy) (StrategyResult, bool) {
	switch s {
	case StrategyMinimum:
		return c.Minimum, true
	case StrategySnowball:
		return c.Snowball, true
	case StrategyAvalanche:
		return c.Avalanche, true
	}
	return StrategyResult{}, false
}

// Set stores r under its own strategy.
func (c *StrategyComparison) Set(r StrategyResult) {
	switch r.Strategy {
	case StrategyMinimum:
		c.Minimum = r
	case StrategySnowball:
		c.Snowball = r
	case StrategyAvalanche:
		c.Avalanche = r
	}
}

// Results returns the results in AllStrategies order
func (c *StrategyComparison) Results() []StrategyResult {
	return []StrategyResult{c.Minimum, c.Snowball, c.Avalanche}
}

// Best returns the strategy with the lowest total interest. Ties are broken by
// fewer months, then by AllStrategies order.
func (c *StrategyComparison) Best() StrategyResult {
	results := c.Results()
	best := results[0]
	for _, r := range results[1:] {
		switch {
		case r.TotalInterest.LessThan(best.TotalInterest):
			best = r
		case r.TotalInterest.Equal(best.TotalInterest) && r.Months < best.Months:
			best = r
		}
	}
	return best
}
