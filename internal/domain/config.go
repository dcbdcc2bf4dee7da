package domain

// ModelConfig holds every constant of the wealth model for one simulation
// run. It is treated as immutable once a run starts; to compare parameter
// sets, build one ModelConfig per run.
type ModelConfig struct {
	Income        IncomeConfig        `yaml:"income" json:"income"`
	Returns       ReturnsConfig       `yaml:"returns" json:"returns"`
	MPC           MPCParams           `yaml:"mpc" json:"mpc"`
	Demographics  DemographicsConfig  `yaml:"demographics" json:"demographics"`
	InitialWealth InitialWealthConfig `yaml:"initial_wealth" json:"initial_wealth"`

	// BorrowingLimitShare is the fraction of positive wealth that can be
	// borrowed against for consumption in a single year.
	BorrowingLimitShare float64 `yaml:"borrowing_limit_share" json:"borrowing_limit_share"`

	SimulationYears int `yaml:"simulation_years" json:"simulation_years"`
}

// IncomeConfig parameterizes labor income over the life cycle.
type IncomeConfig struct {
	BaseIncome            float64 `yaml:"base_income" json:"base_income"`
	GrowthRate            float64 `yaml:"growth_rate" json:"growth_rate"`
	Volatility            float64 `yaml:"volatility" json:"volatility"` // std dev of the underlying normal of the log-normal shock
	ParentWealthEffect    float64 `yaml:"parent_wealth_effect" json:"parent_wealth_effect"`
	RetirementIncomeRatio float64 `yaml:"retirement_income_ratio" json:"retirement_income_ratio"`
}

// ReturnsConfig parameterizes the stochastic rate of return on wealth.
type ReturnsConfig struct {
	Mean       float64 `yaml:"mean" json:"mean"`
	Volatility float64 `yaml:"volatility" json:"volatility"`
}

// MPCParams are the three parameters of the marginal-propensity-to-consume
// model. Elasticity == -1 makes the consumption integral singular and is
// rejected by Validate; it is typically negative, so that higher earners
// save proportionally more.
type MPCParams struct {
	BaseMPC         float64 `yaml:"base_mpc" json:"base_mpc"`
	ReferenceIncome float64 `yaml:"reference_income" json:"reference_income"`
	Elasticity      float64 `yaml:"elasticity" json:"elasticity"`
}

// DemographicsConfig holds the age constants of the model.
//
// NoBequestThreshold is a parent-wealth-rank cutoff, not a probability:
// children whose parent rank falls below it receive no bequest.
type DemographicsConfig struct {
	ChildStartAge      int     `yaml:"child_start_age" json:"child_start_age"`
	RetirementAge      int     `yaml:"retirement_age" json:"retirement_age"`
	BequestAgeMin      int     `yaml:"bequest_age_min" json:"bequest_age_min"`
	BequestAgeMax      int     `yaml:"bequest_age_max" json:"bequest_age_max"`
	NoBequestThreshold float64 `yaml:"no_bequest_threshold" json:"no_bequest_threshold"`
}

// InitialWealthConfig parameterizes the Pareto distribution that parent
// wealth is drawn from. Each draw is multiplied by WealthScale and the
// base income.
type InitialWealthConfig struct {
	ParetoShape float64 `yaml:"pareto_shape" json:"pareto_shape"`
	WealthScale float64 `yaml:"wealth_scale" json:"wealth_scale"`
}

// DefaultModelConfig returns the reference parameter set.
func DefaultModelConfig() *ModelConfig {
	return &ModelConfig{
		Income: IncomeConfig{
			BaseIncome:            50000,
			GrowthRate:            0.02,
			Volatility:            0.3,
			ParentWealthEffect:    0.2,
			RetirementIncomeRatio: 0.4,
		},
		Returns: ReturnsConfig{
			Mean:       0.04,
			Volatility: 0.05,
		},
		MPC: MPCParams{
			BaseMPC:         0.6,
			ReferenceIncome: 35000,
			Elasticity:      -0.7,
		},
		Demographics: DemographicsConfig{
			ChildStartAge:      25,
			RetirementAge:      65,
			BequestAgeMin:      30,
			BequestAgeMax:      60,
			NoBequestThreshold: 0.4,
		},
		InitialWealth: InitialWealthConfig{
			ParetoShape: 2,
			WealthScale: 20,
		},
		BorrowingLimitShare: 0.1,
		SimulationYears:     60,
	}
}
