package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/pkg/ageutil"
	money "github.com/rpgo/projection-engine/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	// CompletionAge ends a simulation.
	CompletionAge = 90
	// accumulatorPrecision bounds the scale of the running investment balance.
	accumulatorPrecision = 18
)

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("simulator closed")

var (
	salaryRaise        = decimal.NewFromFloat(1.03)
	annualReturn       = 1.07
	contributionRate   = decimal.NewFromFloat(0.10)
	debtPaymentRate    = decimal.NewFromFloat(0.02)
	minimumDebtPayment = decimal.NewFromInt(300)
)

// Update is delivered to the observer after every applied tick.
type Update struct {
	Status   domain.SimulationStatus
	Progress domain.SimulationProgress
	State    domain.FinancialState
	// Sampled is set when the tick appended a historical data point.
	Sampled *domain.HistoricalDataPoint
}

// Option configures a Simulator
type Option func(*Simulator)

// WithScheduler sets the tick scheduler (default TimerScheduler).
func WithScheduler(s Scheduler) Option {
	return func(sim *Simulator) { sim.scheduler = s }
}

// WithLogger sets the logger (default no-op).
func WithLogger(l calculation.Logger) Option {
	return func(sim *Simulator) {
		if l != nil {
			sim.logger = l
		}
	}
}

// WithSpeed sets the initial speed (default month).
func WithSpeed(speed domain.Speed) Option {
	return func(sim *Simulator) {
		if speed.Valid() {
			sim.speed = speed
		}
	}
}

// WithObserver registers fn to receive every tick's Update. fn runs outside the simulator lock.
func WithObserver(fn func(Update)) Option {
	return func(sim *Simulator) { sim.observer = fn }
}

// Simulator is the life-stage state machine. It advances a combined salary,
// investment and debt model one tick at a time while running, and samples one
// historical point per integer age reached.
//
// Ticks never overlap: every tick runs under mu, and the simulator holds at
// most one pending scheduled tick. Pause, Reset and Close cancel that tick and
// bump generation so a callback that already fired becomes a no-op.
type Simulator struct {
	mu         sync.Mutex
	scheduler  Scheduler
	logger     calculation.Logger
	observer   func(Update)
	speed      domain.Speed
	status     domain.SimulationStatus
	seed       domain.PersonalFinancialData
	progress   domain.SimulationProgress
	state      domain.FinancialState
	history    []domain.HistoricalDataPoint
	lastSample int
	pending    Handle
	generation uint64
	done       chan struct{}
	closed     bool
}

// New creates a simulator in the setup state.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		scheduler: TimerScheduler{},
		logger:    calculation.NopLogger{},
		speed:     domain.SpeedMonth,
		status:    domain.StatusSetup,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateSeed checks the numeric preconditions of a life-stage seed.
func ValidateSeed(seed domain.PersonalFinancialData) error {
	if math.IsNaN(seed.Age) || seed.Age < 0 || seed.Age >= CompletionAge {
		return fmt.Errorf("%w: age must be between 0 and %d, got %v", domain.ErrInvalidInput, CompletionAge, seed.Age)
	}
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"current salary", seed.CurrentSalary},
		{"savings", seed.Savings},
		{"investments", seed.Investments},
		{"debt amount", seed.DebtAmount},
		{"debt interest rate", seed.DebtInterestRate},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidInput, f.name)
		}
	}
	return nil
}

// initialState derives the starting financial position from a seed.
func initialState(seed domain.PersonalFinancialData) domain.FinancialState {
	payment := decimal.Max(seed.DebtAmount.Mul(debtPaymentRate), minimumDebtPayment)
	return domain.FinancialState{
		CurrentSalary:      seed.CurrentSalary,
		CurrentInvestments: seed.Investments,
		RemainingDebt:      seed.DebtAmount,
		NetWorth:           seed.Investments.Sub(seed.DebtAmount),
		MonthlyPayment:     payment,
	}
}

// Start seeds the model and begins ticking. Valid only from setup.
func (s *Simulator) Start(seed domain.PersonalFinancialData) error {
	if err := ValidateSeed(seed); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.status != domain.StatusSetup {
		return &domain.StateTransitionError{Op: "start", From: s.status}
	}

	s.seed = seed
	s.state = initialState(seed)
	s.progress = domain.SimulationProgress{CurrentAge: seed.Age}
	s.history = nil
	s.lastSample = ageutil.WholeYears(seed.Age)
	s.status = domain.StatusRunning
	s.logger.Infof("life stage simulation started at age %v (speed=%s, salary=%s, debt=%s)",
		seed.Age, s.speed, seed.CurrentSalary.StringFixed(2), seed.DebtAmount.StringFixed(2))
	s.scheduleLocked()
	return nil
}

// Pause stops ticking. Valid only while running; no earlier-scheduled tick runs afterwards.
func (s *Simulator) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.StatusRunning {
		return &domain.StateTransitionError{Op: "pause", From: s.status}
	}
	s.cancelLocked()
	s.status = domain.StatusPaused
	s.logger.Debugf("life stage simulation paused at age %.4f", s.progress.CurrentAge)
	return nil
}

// Resume continues ticking from where Pause left off. Valid only while paused.
func (s *Simulator) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != domain.StatusPaused {
		return &domain.StateTransitionError{Op: "resume", From: s.status}
	}
	s.status = domain.StatusRunning
	s.scheduleLocked()
	s.logger.Debugf("life stage simulation resumed at age %.4f", s.progress.CurrentAge)
	return nil
}

// Reset returns to setup from any state, discarding history and restoring the seed position.
// After Close, Wait keeps returning immediately.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.status = domain.StatusSetup
	s.history = nil
	s.progress = domain.SimulationProgress{CurrentAge: s.seed.Age}
	s.state = initialState(s.seed)
	s.lastSample = ageutil.WholeYears(s.seed.Age)
	s.finishLocked()
	if !s.closed {
		s.done = make(chan struct{})
	}
	s.logger.Debugf("life stage simulation reset")
}

// SetSpeed changes the speed in any state. A running simulation is rescheduled at the new cadence.
func (s *Simulator) SetSpeed(speed domain.Speed) error {
	if !speed.Valid() {
		return fmt.Errorf("%w: unknown speed %q", domain.ErrInvalidInput, speed)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speed = speed
	if s.status == domain.StatusRunning {
		s.cancelLocked()
		s.scheduleLocked()
	}
	return nil
}

// Close cancels any pending tick. The simulator keeps its state but never ticks again.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.closed = true
	s.finishLocked()
}

// Wait blocks until the current run completes, is reset or closed, or ctx is done.
func (s *Simulator) Wait(ctx context.Context) (domain.SimulationStatus, error) {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	select {
	case <-done:
		return s.Status(), nil
	case <-ctx.Done():
		return s.Status(), ctx.Err()
	}
}

func (s *Simulator) scheduleLocked() {
	if s.closed {
		return
	}
	gen := s.generation
	s.pending = s.scheduler.Schedule(s.speed.TickInterval(), func() { s.fire(gen) })
}

func (s *Simulator) cancelLocked() {
	s.generation++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *Simulator) finishLocked() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// fire runs one scheduled tick if it still belongs to the current run.
func (s *Simulator) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.status != domain.StatusRunning || s.closed {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	update := s.tickLocked()
	if s.status == domain.StatusRunning {
		s.scheduleLocked()
	}
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer(update)
	}
}

// tickLocked applies one step of the model.
func (s *Simulator) tickLocked() Update {
	step := s.speed.AgeIncrement()
	before := s.progress.CurrentAge
	after := before + step
	elapsedMonths := decimal.NewFromFloat(ageutil.YearsToMonths(step))

	st := s.state
	for i := 0; i < ageutil.CrossedBoundaries(before, after); i++ {
		st.CurrentSalary = st.CurrentSalary.Mul(salaryRaise)
	}

	growth := decimal.NewFromFloat(math.Pow(annualReturn, step))
	contribution := money.NewMoneyFromDecimal(st.CurrentSalary.Mul(contributionRate)).Monthly().Mul(elapsedMonths).Decimal
	st.CurrentInvestments = st.CurrentInvestments.Mul(growth).Add(contribution).Round(accumulatorPrecision)

	paid := money.NewMoneyFromDecimal(st.MonthlyPayment).Mul(elapsedMonths)
	st.RemainingDebt = money.NewMoneyFromDecimal(st.RemainingDebt).Sub(paid).NonNegative().Decimal
	st.NetWorth = st.CurrentInvestments.Sub(st.RemainingDebt)
	s.state = st

	years, months, days := ageutil.Elapsed(s.seed.Age, after)
	s.progress = domain.SimulationProgress{
		CurrentAge:    after,
		YearsElapsed:  years,
		MonthsElapsed: months,
		DaysElapsed:   days,
	}

	if ageutil.WholeYears(after) >= CompletionAge {
		s.status = domain.StatusCompleted
		s.cancelLocked()
		s.finishLocked()
		s.logger.Infof("life stage simulation completed at age %.2f: net worth %s", after, st.NetWorth.StringFixed(2))
	}

	update := Update{Status: s.status, Progress: s.progress, State: s.state}
	if point, ok := s.sampleLocked(); ok {
		update.Sampled = &point
	}
	return update
}

// sampleLocked appends one point the first time an integer age is reached.
func (s *Simulator) sampleLocked() (domain.HistoricalDataPoint, bool) {
	whole := ageutil.WholeYears(s.progress.CurrentAge)
	if whole <= s.lastSample || whole < ageutil.WholeYears(s.seed.Age) {
		return domain.HistoricalDataPoint{}, false
	}
	point := domain.HistoricalDataPoint{
		Age:         whole,
		NetWorth:    s.state.NetWorth,
		Salary:      s.state.CurrentSalary,
		Investments: s.state.CurrentInvestments,
		Debt:        s.state.RemainingDebt,
	}
	s.history = append(s.history, point)
	s.lastSample = whole
	return point, true
}

// Status returns the current state machine state.
func (s *Simulator) Status() domain.SimulationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Speed returns the current speed
func (s *Simulator) Speed() domain.Speed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// Progress returns the simulated time position.
func (s *Simulator) Progress() domain.SimulationProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// State returns the current financial position.
func (s *Simulator) State() domain.FinancialState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns a copy of the sampled trajectory.
func (s *Simulator) History() []domain.HistoricalDataPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.HistoricalDataPoint(nil), s.history...)
}

// Window returns the sampled trajectory restricted to w.
func (s *Simulator) Window(w Window) ([]domain.HistoricalDataPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SliceWindow(s.history, w, s.progress.CurrentAge)
}

// Outcome captures the simulator for reporting.
func (s *Simulator) Outcome() domain.LifeStageOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.LifeStageOutcome{
		Status:   s.status,
		Speed:    s.speed,
		Seed:     s.seed,
		Progress: s.progress,
		State:    s.state,
		History:  append([]domain.HistoricalDataPoint(nil), s.history...),
	}
}
