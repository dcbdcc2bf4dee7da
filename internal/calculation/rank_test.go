package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankData(t *testing.T) {
	ranks := RankData([]float64{30, 10, 20})
	assert.Equal(t, []float64{3, 1, 2}, ranks)
}

func TestRankDataAveragesTies(t *testing.T) {
	// Two values tied for ranks 2 and 3 both get 2.5.
	ranks := RankData([]float64{5, 1, 5, 9})
	assert.Equal(t, []float64{2.5, 1, 2.5, 4}, ranks)

	all := RankData([]float64{7, 7, 7})
	assert.Equal(t, []float64{2, 2, 2}, all)
}

func TestParentRanksNormalization(t *testing.T) {
	ranks := ParentRanks([]float64{100, 300, 200, 400})
	assert.Equal(t, []float64{0.25, 0.75, 0.5, 1.0}, ranks)
}

func TestWealthRanksNormalization(t *testing.T) {
	// Zero-indexed convention: lowest gets 0, highest gets 1.
	ranks := WealthRanks([]float64{50, 10, 30})
	assert.Equal(t, []float64{1, 0, 0.5}, ranks)
}

func TestBequestRanksRescaling(t *testing.T) {
	bequests := []float64{0, 100, 0, 300, 200}
	ranks := BequestRanks(bequests, 0.4)

	assert.Equal(t, 0.0, ranks[0])
	assert.Equal(t, 0.0, ranks[2])
	// Among the three recipients: 100 -> 0.4+0.6*(1/3), 200 -> 0.4+0.6*(2/3), 300 -> 1.
	assert.InDelta(t, 0.6, ranks[1], 1e-12)
	assert.InDelta(t, 1.0, ranks[3], 1e-12)
	assert.InDelta(t, 0.8, ranks[4], 1e-12)
}

func TestBequestRanksNoRecipients(t *testing.T) {
	ranks := BequestRanks([]float64{0, 0, 0}, 0.4)
	assert.Equal(t, []float64{0, 0, 0}, ranks)
}

func TestCalculateRankStatisticsBins(t *testing.T) {
	n := 10
	stats, err := CalculateRankStatistics([]float64{0.05, 0.5, 1.0}, []float64{0.1, 0.2, 0.3}, n)
	require.NoError(t, err)
	require.Len(t, stats.BinCenters, n)
	require.Len(t, stats.MeanRanks, n)
	require.Len(t, stats.StdRanks, n)

	// Centers are the strictly increasing midpoints of equal-width bins.
	width := 1.0 / float64(n)
	for i, center := range stats.BinCenters {
		assert.InDelta(t, width*(float64(i)+0.5), center, 1e-12)
		if i > 0 {
			assert.Greater(t, center, stats.BinCenters[i-1])
		}
	}

	// Rank 1.0 lands in the last bin despite the half-open convention.
	assert.Equal(t, 0.3, stats.MeanRanks[n-1])
	assert.Equal(t, 0.0, stats.StdRanks[n-1])
}

func TestCalculateRankStatisticsEmptyBins(t *testing.T) {
	stats, err := CalculateRankStatistics([]float64{0.95}, []float64{0.5}, 10)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		assert.True(t, math.IsNaN(stats.MeanRanks[i]), "empty bin %d should be NaN", i)
		assert.True(t, math.IsNaN(stats.StdRanks[i]), "empty bin %d should be NaN", i)
	}
	assert.Equal(t, 0.5, stats.MeanRanks[9])
}

func TestCalculateRankStatisticsMeanAndStd(t *testing.T) {
	bequestRanks := []float64{0.45, 0.46, 0.47}
	wealthRanks := []float64{0.2, 0.4, 0.6}
	stats, err := CalculateRankStatistics(bequestRanks, wealthRanks, 10)
	require.NoError(t, err)

	// All three fall in bin [0.4, 0.5).
	assert.InDelta(t, 0.4, stats.MeanRanks[4], 1e-12)
	// Population standard deviation, matching the reference aggregation.
	assert.InDelta(t, math.Sqrt(2.0/3.0)*0.2, stats.StdRanks[4], 1e-12)
}

func TestCalculateRankStatisticsRejectsBadInput(t *testing.T) {
	_, err := CalculateRankStatistics([]float64{0.1}, []float64{0.1}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bin count")

	_, err = CalculateRankStatistics([]float64{0.1, 0.2}, []float64{0.1}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "equal length")
}
