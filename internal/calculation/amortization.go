package calculation

import (
	"fmt"
	"sort"

	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// accumulatorPrecision bounds the scale of running decimal accumulators. It is far
// below a cent, so it never changes a displayed value.
const accumulatorPrecision = 18

// AmortizationEngine simulates a single debt repayment strategy month by month.
type AmortizationEngine struct {
	Logger Logger
}

// NewAmortizationEngine creates an engine with a no-op logger
func NewAmortizationEngine() *AmortizationEngine {
	return &AmortizationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (ae *AmortizationEngine) SetLogger(l Logger) {
	ae.Logger = orNop(l)
}

// ValidateDebts checks the numeric preconditions of a repayment simulation.
func ValidateDebts(debts []domain.Debt, extraPayment decimal.Decimal) error {
	if extraPayment.IsNegative() {
		return fmt.Errorf("%w: extra payment cannot be negative, got %s", domain.ErrInvalidInput, extraPayment.StringFixed(2))
	}
	for i, d := range debts {
		label := d.Label()
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if d.Balance.IsNegative() {
			return fmt.Errorf("%w: debt %s balance cannot be negative", domain.ErrInvalidInput, label)
		}
		if d.InterestRate.IsNegative() {
			return fmt.Errorf("%w: debt %s interest rate cannot be negative", domain.ErrInvalidInput, label)
		}
		if d.MinimumPayment.IsNegative() {
			return fmt.Errorf("%w: debt %s minimum payment cannot be negative", domain.ErrInvalidInput, label)
		}
	}
	return nil
}

// orderDebts sorts debts in place for strategy. The order is fixed for a whole run.
func orderDebts(debts []domain.Debt, strategy domain.Strategy) []domain.Debt {
	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].Balance.LessThan(debts[j].Balance)
		})
	case domain.StrategyAvalanche:
		sort.SliceStable(debts, func(i, j int) bool {
			return debts[i].InterestRate.GreaterThan(debts[j].InterestRate)
		})
	}
	return debts
}

// Simulate runs strategy against a private copy of debts until every balance is
// repaid or MaxAmortizationMonths elapse. Reaching the cutoff is not an error.
func (ae *AmortizationEngine) Simulate(debts []domain.Debt, strategy domain.Strategy, extraPayment decimal.Decimal) (domain.StrategyResult, error) {
	if !strategy.Valid() {
		return domain.StrategyResult{}, fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidInput, strategy)
	}
	if err := ValidateDebts(debts, extraPayment); err != nil {
		return domain.StrategyResult{}, err
	}
	logger := orNop(ae.Logger)

	working := orderDebts(domain.CloneDebts(debts), strategy)
	payoffMonth := make([]int, len(working))
	owed := make([]bool, len(working))
	for i, d := range working {
		owed[i] = d.Balance.IsPositive()
	}
	useExtra := extraPayment.IsPositive() && strategy != domain.StrategyMinimum

	totalPaid := decimal.Zero
	totalInterest := decimal.Zero
	remaining := domain.TotalBalance(working)
	monthlyData := make([]domain.MonthlySnapshot, 0, domain.MonthlyDataLimit)

	month := 0
	for remaining.IsPositive() && month < domain.MaxAmortizationMonths {
		month++
		monthPaid := decimal.Zero
		monthInterest := decimal.Zero

		// Interest accrues before the minimum payment within the same period.
		for i := range working {
			d := &working[i]
			if !d.Balance.IsPositive() {
				continue
			}
			interest := d.Balance.Mul(d.MonthlyRate()).Round(accumulatorPrecision)
			d.Balance = d.Balance.Add(interest)
			payment := decimal.Min(d.MinimumPayment, d.Balance)
			d.Balance = d.Balance.Sub(payment)
			monthInterest = monthInterest.Add(interest)
			monthPaid = monthPaid.Add(payment)
		}

		// At most one debt, the first unpaid in strategy order, receives the extra payment.
		if useExtra {
			for i := range working {
				d := &working[i]
				if !d.Balance.IsPositive() {
					continue
				}
				extra := decimal.Min(extraPayment, d.Balance)
				d.Balance = d.Balance.Sub(extra)
				monthPaid = monthPaid.Add(extra)
				break
			}
		}

		remaining = decimal.Zero
		for i, d := range working {
			if !d.Balance.IsPositive() {
				if owed[i] && payoffMonth[i] == 0 {
					payoffMonth[i] = month
					logger.Debugf("%s: %s paid off in month %d", strategy, d.Label(), month)
				}
				continue
			}
			remaining = remaining.Add(d.Balance)
		}

		totalPaid = totalPaid.Add(monthPaid)
		totalInterest = totalInterest.Add(monthInterest)
		if len(monthlyData) < domain.MonthlyDataLimit {
			monthlyData = append(monthlyData, domain.MonthlySnapshot{
				Month:    month,
				Balance:  remaining,
				Payment:  monthPaid,
				Interest: monthInterest,
			})
		}
	}

	cutoff := remaining.IsPositive()
	if cutoff {
		logger.Warnf("%s: cutoff reached after %d months with %s outstanding", strategy, month, remaining.StringFixed(2))
	}

	return domain.StrategyResult{
		Strategy:                strategy,
		ExtraPayment:            extraPayment,
		Months:                  month,
		TotalPaid:               totalPaid,
		TotalInterest:           totalInterest,
		MonthlySavingsVsMinimum: decimal.Zero,
		RemainingBalance:        remaining,
		ReachedCutoff:           cutoff,
		PayoffOrder:             payoffOrder(working, owed, payoffMonth),
		MonthlyData:             monthlyData,
	}, nil
}

// payoffOrder lists owed debts by the month they were cleared; debts still
// outstanding at the cutoff come last with Month 0.
func payoffOrder(working []domain.Debt, owed []bool, payoffMonth []int) []domain.DebtPayoff {
	order := make([]domain.DebtPayoff, 0, len(working))
	for i, d := range working {
		if !owed[i] {
			continue
		}
		order = append(order, domain.DebtPayoff{DebtID: d.ID, Name: d.Name, Month: payoffMonth[i]})
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i].Month, order[j].Month
		if a == 0 || b == 0 {
			return a != 0 && b == 0
		}
		return a < b
	})
	return order
}
