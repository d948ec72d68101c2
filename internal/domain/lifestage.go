package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Speed controls both the simulated step per tick and the wall-clock cadence between ticks.
type Speed string

const (
	SpeedDay   Speed = "day"
	SpeedWeek  Speed = "week"
	SpeedMonth Speed = "month"
	SpeedYear  Speed = "year"
)

// AllSpeeds lists the supported speeds from finest to coarsest
func AllSpeeds() []Speed {
	return []Speed{SpeedDay, SpeedWeek, SpeedMonth, SpeedYear}
}

// Valid reports whether s is a supported speed.
func (s Speed) Valid() bool {
	switch s {
	case SpeedDay, SpeedWeek, SpeedMonth, SpeedYear:
		return true
	}
	return false
}

// AgeIncrement is the simulated years added per tick.
func (s Speed) AgeIncrement() float64 {
	switch s {
	case SpeedDay:
		return 1.0 / 365
	case SpeedWeek:
		return 1.0 / 52
	case SpeedMonth:
		return 1.0 / 12
	case SpeedYear:
		return 1
	}
	return 0
}

// TickInterval is the wall-clock delay between ticks. It is independent of AgeIncrement.
func (s Speed) TickInterval() time.Duration {
	switch s {
	case SpeedDay:
		return 100 * time.Millisecond
	case SpeedWeek:
		return 300 * time.Millisecond
	case SpeedMonth:
		return 500 * time.Millisecond
	case SpeedYear:
		return time.Second
	}
	return 0
}

// ParseSpeed resolves a speed name (case-insensitive)
func ParseSpeed(name string) (Speed, error) {
	s := Speed(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown speed %q", ErrInvalidInput, name)
	}
	return s, nil
}

// SimulationStatus is the life-stage simulator state.
type SimulationStatus string

const (
	StatusSetup     SimulationStatus = "setup"
	StatusRunning   SimulationStatus = "running"
	StatusPaused    SimulationStatus = "paused"
	StatusCompleted SimulationStatus = "completed"
)

// PersonalFinancialData seeds a life-stage simulation.
type PersonalFinancialData struct {
	Age              float64         `yaml:"age" json:"age"`
	CurrentSalary    decimal.Decimal `yaml:"current_salary" json:"current_salary"`
	Savings          decimal.Decimal `yaml:"savings" json:"savings"`
	Investments      decimal.Decimal `yaml:"investments" json:"investments"`
	DebtAmount       decimal.Decimal `yaml:"debt_amount" json:"debt_amount"`
	DebtInterestRate decimal.Decimal `yaml:"debt_interest_rate" json:"debt_interest_rate"`
}

// SimulationProgress tracks simulated time. The elapsed counters are whole units since the start age.
type SimulationProgress struct {
	CurrentAge    float64 `json:"current_age"`
	YearsElapsed  int     `json:"years_elapsed"`
	MonthsElapsed int     `json:"months_elapsed"`
	DaysElapsed   int     `json:"days_elapsed"`
}

// FinancialState is the simulated financial position, updated once per tick
type FinancialState struct {
	CurrentSalary      decimal.Decimal `json:"current_salary"`
	CurrentInvestments decimal.Decimal `json:"current_investments"`
	RemainingDebt      decimal.Decimal `json:"remaining_debt"`
	NetWorth           decimal.Decimal `json:"net_worth"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
}

// HistoricalDataPoint is the state sampled the first time an integer age is reached.
type HistoricalDataPoint struct {
	Age         int             `json:"age"`
	NetWorth    decimal.Decimal `json:"net_worth"`
	Salary      decimal.Decimal `json:"salary"`
	Investments decimal.Decimal `json:"investments"`
	Debt        decimal.Decimal `json:"debt"`
}

// LifeStageOutcome is a read-only capture of a simulator for reporting.
type LifeStageOutcome struct {
	Status   SimulationStatus      `json:"status"`
	Speed    Speed                 `json:"speed"`
	Seed     PersonalFinancialData `json:"seed"`
	Progress SimulationProgress    `json:"progress"`
	State    FinancialState        `json:"state"`
	History  []HistoricalDataPoint `json:"history"`
	Stats    *TrajectoryStats      `json:"stats,omitempty"`
}

// TrajectoryStats summarizes year-over-year net worth changes of a trajectory.
// The break-even and debt-free ages are interpolated and nil when never reached.
type TrajectoryStats struct {
	Samples           int             `json:"samples"`
	MeanChange        decimal.Decimal `json:"mean_change"`
	MedianChange      decimal.Decimal `json:"median_change"`
	StdDevChange      decimal.Decimal `json:"stddev_change"`
	PeakNetWorth      decimal.Decimal `json:"peak_net_worth"`
	PeakNetWorthAge   int             `json:"peak_net_worth_age"`
	FinalNetWorth     decimal.Decimal `json:"final_net_worth"`
	NetWorthBreakEven *float64        `json:"net_worth_break_even,omitempty"`
	DebtFreeAge       *float64        `json:"debt_free_age,omitempty"`
}
