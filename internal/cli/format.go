// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney formats a dollar amount with thousands separators. Whole
// amounts drop the cents.
// e.g., 7500 -> "$7,500", 1234.5 -> "$1,234.50", -40 -> "-$40"
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatMoney(d.Neg())
	}
	if d.Equal(d.Truncate(0)) {
		return "$" + humanize.Comma(d.IntPart())
	}
	return "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// FormatDollars is FormatMoney for chart values already held as floats.
func FormatDollars(f float64) string {
	return FormatMoney(decimal.NewFromFloat(math.Round(f*100) / 100))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-100 percentage to one decimal place.
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(1) + "%"
}

// FormatShare formats a 0-1 fraction as a percentage string.
func FormatShare(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDelta formats a month-over-month change with its sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatDollars(delta)
	}
	return "-" + FormatDollars(-delta)
}

// FormatAge renders how long ago t was relative to now, e.g. "3 minutes ago".
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
