package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationResult is the full output of one simulation run.
type SimulationResult struct {
	People       []*Person `json:"people"`
	BequestRanks []float64 `json:"bequest_ranks"`
	WealthRanks  []float64 `json:"wealth_ranks"`

	// The bequest schedule, parallel to People.
	WillReceiveBequest []bool    `json:"will_receive_bequest"`
	BequestDeathAges   []int     `json:"bequest_death_ages"`
	BequestAmounts     []float64 `json:"bequest_amounts"`

	NumPeople int    `json:"num_people"`
	Years     int    `json:"years"`
	Seed      uint64 `json:"seed"` // the seed actually used, for reproducing the run
}

// FinalWealth collects every person's final wealth, in population order.
func (r *SimulationResult) FinalWealth() []float64 {
	out := make([]float64, len(r.People))
	for i, p := range r.People {
		out[i] = p.FinalWealth()
	}
	return out
}

// RankStatistics holds binned statistics of wealth rank by bequest rank.
// Bins with no members carry NaN in both MeanRanks and StdRanks; formatters
// are expected to render those as missing rather than zero.
type RankStatistics struct {
	BinCenters []float64 `json:"bin_centers"`
	MeanRanks  []float64 `json:"mean_ranks"`
	StdRanks   []float64 `json:"std_ranks"`
}

// WealthPercentiles summarizes the distribution of final wealth.
type WealthPercentiles struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// WealthSummary is the headline view of a run: where final wealth ended up
// and how strongly it tracks inherited bequests.
type WealthSummary struct {
	MeanFinalWealth decimal.Decimal   `json:"mean_final_wealth"`
	Percentiles     WealthPercentiles `json:"percentiles"`

	// BequestRankCorrelation is the correlation between bequest rank and
	// final wealth rank among bequest recipients. Zero when fewer than two
	// people received a bequest.
	BequestRankCorrelation float64 `json:"bequest_rank_correlation"`
	NumBequestRecipients   int     `json:"num_bequest_recipients"`
}

// SimulationReport bundles everything the output formatters render.
type SimulationReport struct {
	NumPeople int             `json:"num_people"`
	Years     int             `json:"years"`
	Seed      uint64          `json:"seed"`
	Stats     *RankStatistics `json:"rank_statistics"`
	Summary   *WealthSummary  `json:"wealth_summary"`
}
