package format

import (
	"fmt"
	"math"
	"strings"
)

const daysPerMonth = 30

// FormatPayback renders a payback period given in months.
//
//	0          -> "Immediate"
//	+Inf, < 0  -> "Never"
//	14.5       -> "1 year 2 months"
//	0.5        -> "15 days"
//
// Days are only shown when the period is shorter than a month.
func FormatPayback(months float64) string {
	if months == 0 {
		return "Immediate"
	}
	if !isFinite(months) || months < 0 {
		return "Never"
	}

	years := int(math.Floor(months / 12))
	rest := int(math.Floor(math.Mod(months, 12)))
	days := int(math.Round(math.Mod(months, 1) * daysPerMonth))

	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if rest > 0 {
		parts = append(parts, plural(rest, "month"))
	}
	if len(parts) == 0 && days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if len(parts) == 0 {
		return "Less than 1 day"
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, unit)
	}
	return fmt.Sprintf("%d %s", n, unit)
}
