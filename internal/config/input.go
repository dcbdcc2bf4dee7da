package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// InputParser handles loading of model configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a model configuration from a YAML file. Fields absent
// from the file keep their reference defaults, so a config file only needs
// to name the parameters it changes.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ModelConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := domain.DefaultModelConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ValidateConfig rejects parameter sets the simulation cannot run with.
// Everything here is checked before any expensive work begins.
func (ip *InputParser) ValidateConfig(cfg *domain.ModelConfig) error {
	if cfg.MPC.BaseMPC <= 0 || cfg.MPC.BaseMPC > 1 {
		return fmt.Errorf("mpc.base_mpc must be in (0, 1], got %v", cfg.MPC.BaseMPC)
	}
	if cfg.MPC.ReferenceIncome <= 0 {
		return fmt.Errorf("mpc.reference_income must be positive, got %v", cfg.MPC.ReferenceIncome)
	}
	if cfg.MPC.Elasticity == -1 {
		return fmt.Errorf("mpc.elasticity must not be -1 (singular consumption integral)")
	}
	if cfg.Income.BaseIncome <= 0 {
		return fmt.Errorf("income.base_income must be positive, got %v", cfg.Income.BaseIncome)
	}
	if cfg.Income.Volatility < 0 {
		return fmt.Errorf("income.volatility cannot be negative, got %v", cfg.Income.Volatility)
	}
	if cfg.Income.RetirementIncomeRatio < 0 {
		return fmt.Errorf("income.retirement_income_ratio cannot be negative, got %v", cfg.Income.RetirementIncomeRatio)
	}
	if cfg.Returns.Volatility < 0 {
		return fmt.Errorf("returns.volatility cannot be negative, got %v", cfg.Returns.Volatility)
	}
	if cfg.BorrowingLimitShare < 0 {
		return fmt.Errorf("borrowing_limit_share cannot be negative, got %v", cfg.BorrowingLimitShare)
	}
	if cfg.InitialWealth.ParetoShape <= 0 {
		return fmt.Errorf("initial_wealth.pareto_shape must be positive, got %v", cfg.InitialWealth.ParetoShape)
	}
	if cfg.InitialWealth.WealthScale <= 0 {
		return fmt.Errorf("initial_wealth.wealth_scale must be positive, got %v", cfg.InitialWealth.WealthScale)
	}
	d := cfg.Demographics
	if d.ChildStartAge < 0 {
		return fmt.Errorf("demographics.child_start_age cannot be negative, got %d", d.ChildStartAge)
	}
	if d.RetirementAge <= d.ChildStartAge {
		return fmt.Errorf("demographics.retirement_age (%d) must be after child_start_age (%d)", d.RetirementAge, d.ChildStartAge)
	}
	if d.BequestAgeMax < d.BequestAgeMin {
		return fmt.Errorf("demographics bequest age range is inverted: [%d, %d]", d.BequestAgeMin, d.BequestAgeMax)
	}
	if d.NoBequestThreshold < 0 || d.NoBequestThreshold > 1 {
		return fmt.Errorf("demographics.no_bequest_threshold must be in [0, 1], got %v", d.NoBequestThreshold)
	}
	if cfg.SimulationYears <= 0 {
		return fmt.Errorf("simulation_years must be positive, got %d", cfg.SimulationYears)
	}
	return nil
}
