package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// SummarizeWealth computes the headline statistics of a finished run:
// percentiles and mean of final wealth, and the correlation between
// bequest rank and wealth rank among bequest recipients.
func SummarizeWealth(result *domain.SimulationResult) *domain.WealthSummary {
	finalWealth := result.FinalWealth()
	sorted := append([]float64(nil), finalWealth...)
	sort.Float64s(sorted)

	quantile := func(p float64) decimal.Decimal {
		return decimal.NewFromFloat(stat.Quantile(p, stat.Empirical, sorted, nil))
	}

	summary := &domain.WealthSummary{
		MeanFinalWealth: decimal.NewFromFloat(stat.Mean(finalWealth, nil)),
		Percentiles: domain.WealthPercentiles{
			P10: quantile(0.10),
			P25: quantile(0.25),
			P50: quantile(0.50),
			P75: quantile(0.75),
			P90: quantile(0.90),
		},
	}

	// Recipients are exactly those with a nonzero bequest rank.
	var bq, wr []float64
	for i, r := range result.BequestRanks {
		if r > 0 {
			bq = append(bq, r)
			wr = append(wr, result.WealthRanks[i])
		}
	}
	summary.NumBequestRecipients = len(bq)
	if len(bq) >= 2 {
		summary.BequestRankCorrelation = stat.Correlation(bq, wr, nil)
	}
	return summary
}
