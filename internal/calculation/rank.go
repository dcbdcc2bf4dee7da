package calculation

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/wealthsim/wealth-simulator/internal/domain"
)

// RankData assigns 1-based ranks to values, averaging the ranks of ties so
// that equal values always get equal ranks regardless of input order.
func RankData(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		// Positions i..j (0-based) form a tie group; each member gets the
		// average of ranks i+1..j+1.
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// ParentRanks normalizes ranks to (0, 1]: rank / N.
func ParentRanks(parentWealth []float64) []float64 {
	ranks := RankData(parentWealth)
	n := float64(len(ranks))
	for i := range ranks {
		ranks[i] /= n
	}
	return ranks
}

// WealthRanks normalizes ranks to [0, 1]: (rank - 1) / (N - 1). This is a
// different convention from ParentRanks and the two are kept distinct.
func WealthRanks(finalWealth []float64) []float64 {
	ranks := RankData(finalWealth)
	n := float64(len(ranks))
	for i := range ranks {
		ranks[i] = (ranks[i] - 1) / (n - 1)
	}
	return ranks
}

// BequestRanks ranks bequest amounts. Recipients of a positive bequest are
// rank-normalized among themselves and rescaled into (floor, 1], leaving
// everyone with no bequest at rank 0. The gap below floor mirrors the share
// of the population the eligibility threshold excludes. Safe when nobody
// received anything: all ranks stay 0.
func BequestRanks(bequests []float64, floor float64) []float64 {
	ranks := make([]float64, len(bequests))

	var positive []float64
	var idx []int
	for i, b := range bequests {
		if b > 0 {
			positive = append(positive, b)
			idx = append(idx, i)
		}
	}
	if len(positive) == 0 {
		return ranks
	}

	posRanks := RankData(positive)
	n := float64(len(positive))
	for k, i := range idx {
		ranks[i] = floor + (1-floor)*posRanks[k]/n
	}
	return ranks
}

// CalculateRankStatistics bins bequest ranks into nBins equal-width bins
// over [0, 1] and computes the mean and population standard deviation of
// the wealth ranks falling in each bin. Bins are left-closed, right-open,
// except the last which also includes rank 1.0. Empty bins carry NaN so
// downstream averaging cannot mistake them for zero.
func CalculateRankStatistics(bequestRanks, wealthRanks []float64, nBins int) (*domain.RankStatistics, error) {
	if nBins < 1 {
		return nil, fmt.Errorf("bin count must be positive, got %d", nBins)
	}
	if len(bequestRanks) != len(wealthRanks) {
		return nil, fmt.Errorf("rank arrays must have equal length, got %d and %d",
			len(bequestRanks), len(wealthRanks))
	}

	stats := &domain.RankStatistics{
		BinCenters: make([]float64, nBins),
		MeanRanks:  make([]float64, nBins),
		StdRanks:   make([]float64, nBins),
	}
	width := 1.0 / float64(nBins)

	for i := 0; i < nBins; i++ {
		lo := float64(i) * width
		hi := float64(i+1) * width
		last := i == nBins-1
		if last {
			hi = 1 // avoid float drift excluding rank 1.0
		}
		stats.BinCenters[i] = (lo + hi) / 2

		var members []float64
		for j, r := range bequestRanks {
			if r >= lo && (r < hi || (last && r <= hi)) {
				members = append(members, wealthRanks[j])
			}
		}
		if len(members) == 0 {
			stats.MeanRanks[i] = math.NaN()
			stats.StdRanks[i] = math.NaN()
			continue
		}
		stats.MeanRanks[i] = stat.Mean(members, nil)
		stats.StdRanks[i] = stat.PopStdDev(members, nil)
	}
	return stats, nil
}
