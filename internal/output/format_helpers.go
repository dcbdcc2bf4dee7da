package output

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatRank formats a rank value with 4 decimals; NaN (an empty bin)
// renders as an empty string so it cannot be mistaken for a real zero.
func FormatRank(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
