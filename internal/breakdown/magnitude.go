package breakdown

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// DisplayMagnitude abbreviates large coin and XP amounts for display:
// 1500000 -> "1.50M", 800000 -> "800.00K", 500 -> "500".
// Division is done in decimal so the two shown places are exact.
func DisplayMagnitude(n int) string {
	switch {
	case n >= 1_000_000:
		return decimal.NewFromInt(int64(n)).Div(million).StringFixed(2) + "M"
	case n >= 1_000:
		return decimal.NewFromInt(int64(n)).Div(thousand).StringFixed(2) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// Commas renders n in full with thousands separators: 2300000 -> "2,300,000".
func Commas(n int) string {
	return humanize.Comma(int64(n))
}
