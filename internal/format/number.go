// Package format turns derived figures into display strings.
//
// Every formatter here is total: non-numeric and non-finite values never
// reach the digit formatter and are replaced according to a Fallback.
package format

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Style selects how a finite value is rendered.
type Style int

const (
	// Plain is a grouped decimal: 1,234.5
	Plain Style = iota
	// Currency is US dollars with the sign ahead of the symbol: -$1,234.50
	Currency
	// Percent expects a value already on the 0-100 scale and appends "%".
	Percent
)

// Options controls fraction digits. MaxFractionDigits below
// MinFractionDigits is raised to MinFractionDigits.
type Options struct {
	Style             Style
	MinFractionDigits int
	MaxFractionDigits int
}

// USD renders dollars with a fixed number of fraction digits.
func USD(digits int) Options {
	return Options{Style: Currency, MinFractionDigits: digits, MaxFractionDigits: digits}
}

// Pct renders a percentage with a fixed number of fraction digits.
func Pct(digits int) Options {
	return Options{Style: Percent, MinFractionDigits: digits, MaxFractionDigits: digits}
}

// Decimal renders a grouped number with at most maxDigits fraction digits.
func Decimal(maxDigits int) Options {
	return Options{Style: Plain, MaxFractionDigits: maxDigits}
}

// Fallback is what Number prints when the value cannot be shown as a number.
// A numeric fallback is formatted with the same Options; FallbackNA and any
// other text are returned verbatim.
type Fallback string

const (
	FallbackZero Fallback = "0.00"
	FallbackNA   Fallback = "N/A"
)

var locale = language.AmericanEnglish

// Number formats value per opts. value may be any Go numeric type, a numeric
// string or a json.Number; everything else, and NaN/Inf, yields fb.
func Number(value any, opts Options, fb Fallback) string {
	if f, ok := toFloat(value); ok && isFinite(f) {
		return formatFinite(f, opts)
	}
	return fb.render(opts)
}

// Money is Number with USD(2) and a zero fallback.
func Money(value any) string { return Number(value, USD(2), FallbackZero) }

func (fb Fallback) render(opts Options) string {
	if fb == FallbackNA {
		return string(fb)
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(string(fb)), 64); err == nil && isFinite(f) {
		return formatFinite(f, opts)
	}
	return string(fb)
}

func formatFinite(f float64, opts Options) string {
	lo, hi := opts.MinFractionDigits, opts.MaxFractionDigits
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}

	// Round half away from zero before handing over, x/text rounds half to even.
	scale := math.Pow10(hi)
	f = math.Round(f*scale) / scale
	if f == 0 {
		f = 0 // drop negative zero
	}

	neg := f < 0
	digits := message.NewPrinter(locale).Sprint(number.Decimal(math.Abs(f),
		number.MinFractionDigits(lo),
		number.MaxFractionDigits(hi),
	))

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if opts.Style == Currency {
		b.WriteByte('$')
	}
	b.WriteString(digits)
	if opts.Style == Percent {
		b.WriteByte('%')
	}
	return b.String()
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
