package calculation

import (
	"fmt"
	"sync"

	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// StrategyComparator runs every repayment strategy over the same debt set.
type StrategyComparator struct {
	Engine *AmortizationEngine
	Logger Logger
}

// NewStrategyComparator creates a comparator backed by engine. A nil engine gets a default one.
func NewStrategyComparator(engine *AmortizationEngine) *StrategyComparator {
	if engine == nil {
		engine = NewAmortizationEngine()
	}
	return &StrategyComparator{Engine: engine, Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (sc *StrategyComparator) SetLogger(l Logger) {
	sc.Logger = orNop(l)
}

// CompareAll simulates each strategy in parallel, every run on its own copy of
// debts, then derives savings against the minimum result of this same pass.
func (sc *StrategyComparator) CompareAll(debts []domain.Debt, extraPayment decimal.Decimal) (*domain.StrategyComparison, error) {
	if err := ValidateDebts(debts, extraPayment); err != nil {
		return nil, err
	}
	engine := sc.Engine
	if engine == nil {
		engine = NewAmortizationEngine()
	}

	strategies := domain.AllStrategies()
	results := make([]domain.StrategyResult, len(strategies))
	errs := make([]error, len(strategies))

	var wg sync.WaitGroup
	for i, strategy := range strategies {
		wg.Add(1)
		go func(idx int, s domain.Strategy, owned []domain.Debt) {
			defer wg.Done()
			results[idx], errs[idx] = engine.Simulate(owned, s, extraPayment)
		}(i, strategy, domain.CloneDebts(debts))
	}
	wg.Wait()

	comparison := &domain.StrategyComparison{ExtraPayment: extraPayment}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("simulate %s: %w", strategies[i], err)
		}
		comparison.Set(results[i])
	}

	baseline := comparison.Minimum.TotalInterest
	for _, r := range comparison.Results() {
		if r.Strategy == domain.StrategyMinimum {
			continue
		}
		r.MonthlySavingsVsMinimum = baseline.Sub(r.TotalInterest)
		comparison.Set(r)
	}

	best := comparison.Best()
	orNop(sc.Logger).Infof("compared %d strategies over %d debts: best=%s interest=%s months=%d",
		len(strategies), len(debts), best.Strategy, best.TotalInterest.StringFixed(2), best.Months)
	return comparison, nil
}
