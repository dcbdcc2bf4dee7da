package calculation

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// lifeCycle applies the year-by-year update rule to individual persons.
// All of its randomness comes from the single source handed to it, so one
// seeded simulator produces one reproducible run.
type lifeCycle struct {
	cfg        *domain.ModelConfig
	laborShock distuv.LogNormal
	returnRate distuv.Normal
}

func newLifeCycle(cfg *domain.ModelConfig, src rand.Source) *lifeCycle {
	return &lifeCycle{
		cfg: cfg,
		laborShock: distuv.LogNormal{
			Mu:    0,
			Sigma: cfg.Income.Volatility,
			Src:   src,
		},
		returnRate: distuv.Normal{
			Mu:    cfg.Returns.Mean,
			Sigma: cfg.Returns.Volatility,
			Src:   src,
		},
	}
}

// LaborIncome draws one year of labor income. Retirement income is a fixed
// fraction of base income with no shock; working income follows a
// deterministic growth trend times a log-normal multiplicative shock.
func (lc *lifeCycle) LaborIncome(p *domain.Person, yearsWorked int) float64 {
	if p.IsRetired(lc.cfg.Demographics.RetirementAge) {
		return p.BaseLaborIncome * lc.cfg.Income.RetirementIncomeRatio
	}
	growth := math.Pow(1+lc.cfg.Income.GrowthRate, float64(yearsWorked))
	return p.BaseLaborIncome * growth * lc.laborShock.Rand()
}

// CapitalIncome draws one year of capital income: wealth times a stochastic
// rate of return, which can be negative.
func (lc *lifeCycle) CapitalIncome(p *domain.Person) float64 {
	return p.Wealth * lc.returnRate.Rand()
}

// SimulateYear advances a person by one year: draw incomes, consume per the
// MPC model capped by income plus available borrowing, accumulate wealth,
// record history. Only positive wealth can be borrowed against, so debt
// grants no extra consumption headroom. Desired consumption is not floored
// at zero; in a deep-loss year the borrowing cap alone bounds it.
func (lc *lifeCycle) SimulateYear(p *domain.Person, yearsWorked int, mpc domain.MPCParams) {
	laborIncome := lc.LaborIncome(p, yearsWorked)
	capitalIncome := lc.CapitalIncome(p)
	totalIncome := laborIncome + capitalIncome

	desired := Consumption(totalIncome, mpc)
	borrowingAvailable := math.Max(p.Wealth, 0) * lc.cfg.BorrowingLimitShare
	consumption := math.Min(desired, totalIncome+borrowingAvailable)

	p.Wealth += totalIncome - consumption
	p.RecordYear(laborIncome, capitalIncome, consumption)
}
