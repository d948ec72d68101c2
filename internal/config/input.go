package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rpgo/projection-engine/internal/calculation"
	"github.com/rpgo/projection-engine/internal/domain"
	"github.com/rpgo/projection-engine/internal/simulation"
	"gopkg.in/yaml.v3"
)

//go:embed default_plan.yaml
var defaultPlanYAML []byte

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, normalizes and validates a plan document.
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.normalize(&plan)

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// normalize fills the optional fields of a plan.
func (ip *InputParser) normalize(plan *domain.Plan) {
	for i := range plan.Debts {
		if strings.TrimSpace(plan.Debts[i].ID) == "" {
			plan.Debts[i].ID = uuid.NewString()
		}
	}
	if plan.Simulation.Speed == "" {
		plan.Simulation.Speed = domain.SpeedMonth
	}
}

// ValidatePlan validates every section of a plan
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	seen := make(map[string]bool, len(plan.Debts))
	for _, debt := range plan.Debts {
		if seen[debt.ID] {
			return fmt.Errorf("%w: duplicate debt id %q", domain.ErrInvalidInput, debt.ID)
		}
		seen[debt.ID] = true
	}
	if err := calculation.ValidateDebts(plan.Debts, plan.ExtraPayment); err != nil {
		return fmt.Errorf("debts: %w", err)
	}

	// A zero horizon means the plan has no investment section.
	if plan.Investment.TimeHorizonYears != 0 {
		if err := calculation.ValidateInvestment(plan.Investment); err != nil {
			return fmt.Errorf("investment: %w", err)
		}
	}

	if err := simulation.ValidateSeed(plan.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	if plan.Simulation.Speed != "" && !plan.Simulation.Speed.Valid() {
		return fmt.Errorf("simulation: %w: unknown speed %q", domain.ErrInvalidInput, plan.Simulation.Speed)
	}
	return nil
}

// DefaultPlan returns the embedded example plan.
func (ip *InputParser) DefaultPlan() *domain.Plan {
	plan, err := ip.Parse(defaultPlanYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default plan is invalid: %v", err))
	}
	return plan
}

// DefaultPlanYAML returns the raw embedded example plan, e.g. for `projector init`.
func DefaultPlanYAML() []byte {
	return append([]byte(nil), defaultPlanYAML...)
}
