package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

func defaultMPCParams() domain.MPCParams {
	return domain.MPCParams{
		BaseMPC:         0.6,
		ReferenceIncome: 35000,
		Elasticity:      -0.7,
	}
}

func TestMPCAtReferenceIncomeEqualsBase(t *testing.T) {
	p := defaultMPCParams()
	// Scaled income is exactly 1, so the power term vanishes.
	assert.Equal(t, 0.6, MPC(35000, p))
}

func TestMPCDecreasesWithIncome(t *testing.T) {
	p := defaultMPCParams()
	prev := MPC(1000, p)
	for _, income := range []float64{5000, 20000, 35000, 80000, 250000} {
		cur := MPC(income, p)
		assert.Less(t, cur, prev, "MPC should fall as income rises (income=%v)", income)
		prev = cur
	}
}

func TestMPCGuardsNonPositiveIncome(t *testing.T) {
	p := defaultMPCParams()
	for _, income := range []float64{0, -100, -1e9} {
		v := MPC(income, p)
		assert.Positive(t, v, "MPC must stay finite and positive for income %v", income)
		assert.Equal(t, MPC(0, p), v, "floored incomes should share one MPC value")
	}
}

func TestConsumptionMonotone(t *testing.T) {
	p := defaultMPCParams()
	prev := Consumption(100, p)
	for income := 200.0; income <= 500000; income *= 1.5 {
		cur := Consumption(income, p)
		assert.Greater(t, cur, prev, "consumption should rise with income (income=%v)", income)
		prev = cur
	}
}

func TestConsumptionVanishesAtZeroIncome(t *testing.T) {
	p := defaultMPCParams()
	assert.Equal(t, 0.0, Consumption(0, p))
	assert.Equal(t, 0.0, Consumption(-5000, p))

	// The integral decays like income^0.3, so convergence is slow but monotone.
	prev := Consumption(1, p)
	for _, income := range []float64{1e-3, 1e-6, 1e-9, 1e-12, 1e-15} {
		cur := Consumption(income, p)
		assert.Less(t, cur, prev, "consumption should shrink toward zero (income=%v)", income)
		prev = cur
	}
	assert.InDelta(t, 0, prev, 0.1)
}

func TestAveragePropensityNonIncreasing(t *testing.T) {
	p := defaultMPCParams()
	prev := Consumption(1000, p) / 1000
	for _, income := range []float64{2000, 10000, 35000, 100000, 1e6} {
		apc := Consumption(income, p) / income
		assert.LessOrEqual(t, apc, prev, "average propensity to consume should not rise (income=%v)", income)
		prev = apc
	}
}

func TestValidateMPCParams(t *testing.T) {
	tests := []struct {
		name    string
		params  domain.MPCParams
		wantErr string
	}{
		{"valid", defaultMPCParams(), ""},
		{"unit elasticity singular", domain.MPCParams{BaseMPC: 0.6, ReferenceIncome: 35000, Elasticity: -1}, "singular"},
		{"zero base", domain.MPCParams{BaseMPC: 0, ReferenceIncome: 35000, Elasticity: -0.7}, "base MPC"},
		{"base above one", domain.MPCParams{BaseMPC: 1.2, ReferenceIncome: 35000, Elasticity: -0.7}, "base MPC"},
		{"zero reference income", domain.MPCParams{BaseMPC: 0.6, ReferenceIncome: 0, Elasticity: -0.7}, "reference income"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMPCParams(tt.params)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMPCSliceMatchesScalar(t *testing.T) {
	p := defaultMPCParams()
	incomes := []float64{0, 1000, 35000, 90000}

	mpcs := MPCSlice(incomes, p)
	cons := ConsumptionSlice(incomes, p)
	require.Len(t, mpcs, len(incomes))
	require.Len(t, cons, len(incomes))
	for i, income := range incomes {
		assert.Equal(t, MPC(income, p), mpcs[i])
		assert.Equal(t, Consumption(income, p), cons[i])
	}
}
