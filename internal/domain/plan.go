package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Plan is the complete input of a projection run as loaded from YAML.
type Plan struct {
	Name         string                `yaml:"name" json:"name"`
	Debts        []Debt                `yaml:"debts" json:"debts"`
	ExtraPayment decimal.Decimal       `yaml:"extra_payment" json:"extra_payment"`
	Investment   InvestmentInputs      `yaml:"investment" json:"investment"`
	Profile      PersonalFinancialData `yaml:"profile" json:"profile"`
	Simulation   SimulationSettings    `yaml:"simulation" json:"simulation"`
}

// SimulationSettings configures the life-stage simulator
type SimulationSettings struct {
	Speed Speed `yaml:"speed" json:"speed"`
}

// GenerateAssumptions lists the modeling assumptions of the plan for reports.
func (p *Plan) GenerateAssumptions() []string {
	assumptions := []string{
		fmt.Sprintf("Debt schedules are capped at %d months (%d years)", MaxAmortizationMonths, MaxAmortizationMonths/12),
		"Interest accrues monthly before the minimum payment is applied",
		"Extra payment goes to one debt per month in strategy order",
	}
	if p.Investment.TimeHorizonYears > 0 {
		assumptions = append(assumptions,
			fmt.Sprintf("Investment return: %s%% annually, compounded monthly", p.Investment.AnnualReturnPercent.StringFixed(2)),
			"Monthly contributions are added before that month's growth",
		)
	}
	assumptions = append(assumptions,
		"Life stage: salary grows 3% at each birthday",
		"Life stage: 10% of salary invested at a 7% annual return",
		"Life stage: debt repaid at 2% of the starting balance per month (minimum $300)",
	)
	return assumptions
}
