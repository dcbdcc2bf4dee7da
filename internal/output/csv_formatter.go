package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// CSVFormatter emits the binned rank statistics, one row per bin. Empty
// bins keep their row with blank statistic columns.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	if report.Stats == nil {
		return nil, fmt.Errorf("report has no rank statistics")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"BinCenter", "MeanWealthRank", "StdWealthRank"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	st := report.Stats
	for i, center := range st.BinCenters {
		row := []string{
			fmt.Sprintf("%.4f", center),
			FormatRank(st.MeanRanks[i]),
			FormatRank(st.StdRanks[i]),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
