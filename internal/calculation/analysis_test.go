package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

func TestSummarizeWealth(t *testing.T) {
	sim := NewSimulator(domain.DefaultModelConfig(), 500, 11)
	result, err := sim.RunSimulation()
	require.NoError(t, err)

	summary := SummarizeWealth(result)
	require.NotNil(t, summary)

	pct := summary.Percentiles
	assert.True(t, pct.P10.LessThanOrEqual(pct.P25))
	assert.True(t, pct.P25.LessThanOrEqual(pct.P50))
	assert.True(t, pct.P50.LessThanOrEqual(pct.P75))
	assert.True(t, pct.P75.LessThanOrEqual(pct.P90))

	recipients := 0
	for _, r := range result.BequestRanks {
		if r > 0 {
			recipients++
		}
	}
	assert.Equal(t, recipients, summary.NumBequestRecipients)
	assert.True(t, summary.BequestRankCorrelation >= -1 && summary.BequestRankCorrelation <= 1)
}

func TestSummarizeWealthNoRecipients(t *testing.T) {
	result := &domain.SimulationResult{
		People: []*domain.Person{
			{WealthHistory: []float64{0, 100}},
			{WealthHistory: []float64{0, 200}},
		},
		BequestRanks: []float64{0, 0},
		WealthRanks:  []float64{0, 1},
	}
	summary := SummarizeWealth(result)
	assert.Zero(t, summary.NumBequestRecipients)
	assert.Zero(t, summary.BequestRankCorrelation)
}
