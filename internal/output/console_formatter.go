package output

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WEALTH MOBILITY SIMULATION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "People: %d  Years: %d  Seed: %d\n", report.NumPeople, report.Years, report.Seed)
	fmt.Fprintln(&buf)

	if s := report.Summary; s != nil {
		fmt.Fprintf(&buf, "Mean final wealth: %s\n", FormatCurrency(s.MeanFinalWealth))
		fmt.Fprintf(&buf, "Final wealth percentiles: P10=%s P25=%s P50=%s P75=%s P90=%s\n",
			FormatCurrency(s.Percentiles.P10),
			FormatCurrency(s.Percentiles.P25),
			FormatCurrency(s.Percentiles.P50),
			FormatCurrency(s.Percentiles.P75),
			FormatCurrency(s.Percentiles.P90),
		)
		fmt.Fprintf(&buf, "Bequest recipients: %d", s.NumBequestRecipients)
		if s.NumBequestRecipients >= 2 {
			fmt.Fprintf(&buf, "  (bequest/wealth rank correlation %.3f)", s.BequestRankCorrelation)
		}
		fmt.Fprintln(&buf)
	}

	if st := report.Stats; st != nil {
		occupied := 0
		for _, m := range st.MeanRanks {
			if !math.IsNaN(m) {
				occupied++
			}
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Rank statistics: %d bins, %d occupied\n", len(st.BinCenters), occupied)
		fmt.Fprintln(&buf, "BinCenter  MeanWealthRank  StdWealthRank")
		for i, center := range st.BinCenters {
			if math.IsNaN(st.MeanRanks[i]) {
				continue
			}
			fmt.Fprintf(&buf, "%9.3f  %14s  %13s\n", center, FormatRank(st.MeanRanks[i]), FormatRank(st.StdRanks[i]))
		}
	}
	return buf.Bytes(), nil
}
