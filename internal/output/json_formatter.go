package output

import (
	"encoding/json"
	"math"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON. Empty-bin
// markers (NaN) become null, since JSON has no NaN literal.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonRankStatistics struct {
	BinCenters []float64  `json:"bin_centers"`
	MeanRanks  []*float64 `json:"mean_ranks"`
	StdRanks   []*float64 `json:"std_ranks"`
}

type jsonReport struct {
	NumPeople int                   `json:"num_people"`
	Years     int                   `json:"years"`
	Seed      uint64                `json:"seed"`
	Stats     *jsonRankStatistics   `json:"rank_statistics,omitempty"`
	Summary   *domain.WealthSummary `json:"wealth_summary,omitempty"`
}

func (j JSONFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	out := jsonReport{
		NumPeople: report.NumPeople,
		Years:     report.Years,
		Seed:      report.Seed,
		Summary:   report.Summary,
	}
	if report.Stats != nil {
		out.Stats = &jsonRankStatistics{
			BinCenters: report.Stats.BinCenters,
			MeanRanks:  nullableRanks(report.Stats.MeanRanks),
			StdRanks:   nullableRanks(report.Stats.StdRanks),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

func nullableRanks(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if !math.IsNaN(values[i]) {
			v := values[i]
			out[i] = &v
		}
	}
	return out
}
