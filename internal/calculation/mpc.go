package calculation

import (
	"fmt"
	"math"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// mpcIncomeFloor guards the MPC power function against zero or negative
// income; such years still get a finite (very high) marginal propensity.
const mpcIncomeFloor = 1e-6

// ValidateMPCParams rejects parameter sets the consumption model cannot
// evaluate. It must pass before any simulation work begins.
func ValidateMPCParams(p domain.MPCParams) error {
	if p.BaseMPC <= 0 || p.BaseMPC > 1 {
		return fmt.Errorf("base MPC must be in (0, 1], got %v", p.BaseMPC)
	}
	if p.ReferenceIncome <= 0 {
		return fmt.Errorf("reference income must be positive, got %v", p.ReferenceIncome)
	}
	if p.Elasticity == -1 {
		return fmt.Errorf("elasticity -1 makes the consumption integral singular")
	}
	return nil
}

// MPC returns the marginal propensity to consume at the given income level.
// With negative elasticity the MPC falls as income rises.
func MPC(income float64, p domain.MPCParams) float64 {
	scaled := math.Max(income/p.ReferenceIncome, mpcIncomeFloor)
	return p.BaseMPC * math.Pow(scaled, p.Elasticity)
}

// Consumption returns cumulative consumption at the given income level,
// the closed-form integral of MPC from 0 to income. Non-positive income
// yields zero consumption. Callers must validate p first: the formula is
// undefined at elasticity == -1.
func Consumption(income float64, p domain.MPCParams) float64 {
	alpha := p.Elasticity + 1
	scaled := math.Max(income/p.ReferenceIncome, 0)
	return p.BaseMPC * p.ReferenceIncome * math.Pow(scaled, alpha) / alpha
}

// MPCSlice evaluates MPC over a slice of incomes.
func MPCSlice(incomes []float64, p domain.MPCParams) []float64 {
	out := make([]float64, len(incomes))
	for i, income := range incomes {
		out[i] = MPC(income, p)
	}
	return out
}

// ConsumptionSlice evaluates Consumption over a slice of incomes.
func ConsumptionSlice(incomes []float64, p domain.MPCParams) []float64 {
	out := make([]float64, len(incomes))
	for i, income := range incomes {
		out[i] = Consumption(income, p)
	}
	return out
}
