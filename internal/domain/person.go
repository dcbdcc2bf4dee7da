package domain

// Person represents one simulated individual in the child generation.
// A Person is created once at the start of a run and mutated exactly once
// per simulated year; after the run it is read-only for reporting.
type Person struct {
	Age              int      `json:"age"`
	Wealth           float64  `json:"wealth"`
	ParentWealthRank *float64 `json:"parent_wealth_rank,omitempty"` // in [0,1]; nil when the parent is unknown
	BaseLaborIncome  float64  `json:"base_labor_income"`

	// Histories are append-only, one entry per simulated year.
	// WealthHistory additionally holds the initial endowment, so it is
	// always one element longer than the income and consumption histories.
	WealthHistory        []float64 `json:"wealth_history"`
	LaborIncomeHistory   []float64 `json:"labor_income_history"`
	CapitalIncomeHistory []float64 `json:"capital_income_history"`
	ConsumptionHistory   []float64 `json:"consumption_history"`
}

// NewPerson creates a person at the given starting age and endowment.
// Base labor income is derived once from the parent's wealth rank: children
// of wealthier parents start from a proportionally higher income level.
func NewPerson(age int, initialWealth float64, parentRank *float64, income IncomeConfig) *Person {
	base := income.BaseIncome
	if parentRank != nil {
		base = income.BaseIncome * (1 + income.ParentWealthEffect*(*parentRank))
	}
	return &Person{
		Age:              age,
		Wealth:           initialWealth,
		ParentWealthRank: parentRank,
		BaseLaborIncome:  base,
		WealthHistory:    []float64{initialWealth},
	}
}

// IsRetired reports whether the person has reached the retirement age.
func (p *Person) IsRetired(retirementAge int) bool {
	return p.Age >= retirementAge
}

// FinalWealth returns the last recorded wealth value.
func (p *Person) FinalWealth() float64 {
	return p.WealthHistory[len(p.WealthHistory)-1]
}

// YearsSimulated returns the number of years this person has lived through
// the simulation so far.
func (p *Person) YearsSimulated() int {
	return len(p.LaborIncomeHistory)
}

// RecordYear appends one year's outcomes to the histories and advances age.
func (p *Person) RecordYear(laborIncome, capitalIncome, consumption float64) {
	p.WealthHistory = append(p.WealthHistory, p.Wealth)
	p.LaborIncomeHistory = append(p.LaborIncomeHistory, laborIncome)
	p.CapitalIncomeHistory = append(p.CapitalIncomeHistory, capitalIncome)
	p.ConsumptionHistory = append(p.ConsumptionHistory, consumption)
	p.Age++
}
