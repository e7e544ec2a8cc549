package format

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		name  string
		value any
		opts  Options
		fb    Fallback
		want  string
	}{
		{"currency", 1234.5, USD(2), FallbackZero, "$1,234.50"},
		{"negative currency", -1234.5, USD(2), FallbackZero, "-$1,234.50"},
		{"currency no cents", 29826.5625, USD(0), FallbackZero, "$29,827"},
		{"currency half rounds up", 0.125, USD(2), FallbackZero, "$0.13"},
		{"tiny negative is zero", -0.001, USD(2), FallbackZero, "$0.00"},
		{"percent", 252.3932, Pct(0), FallbackNA, "252%"},
		{"percent digits", 12.5, Pct(1), FallbackNA, "12.5%"},
		{"plain one digit", 1234.56, Decimal(1), FallbackZero, "1,234.6"},
		{"plain trims zeros", 10.0, Decimal(1), FallbackZero, "10"},
		{"plain integer", 375.0, Decimal(0), FallbackZero, "375"},
		{"plain millions", 1e6, Decimal(0), FallbackZero, "1,000,000"},
		{"int input", 5000, Decimal(0), FallbackZero, "5,000"},
		{"numeric string", "42.5", Decimal(1), FallbackZero, "42.5"},
		{"json number", json.Number("1000"), Decimal(0), FallbackZero, "1,000"},
		{"infinite with N/A", math.Inf(1), Pct(0), FallbackNA, "N/A"},
		{"NaN with zero fallback", math.NaN(), USD(2), FallbackZero, "$0.00"},
		{"garbage with numeric fallback", "abc", Decimal(0), "0", "0"},
		{"nil with text fallback", nil, USD(2), "n/a", "n/a"},
		{"bool is not numeric", true, Decimal(0), FallbackNA, "N/A"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Number(c.value, c.opts, c.fb); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	if got := Money(1750.0000000000002); got != "$1,750.00" {
		t.Fatalf("expected $1,750.00, got %q", got)
	}
	if got := Money(math.Inf(-1)); got != "$0.00" {
		t.Fatalf("expected $0.00, got %q", got)
	}
}

func TestFormatPayback(t *testing.T) {
	cases := []struct {
		months float64
		want   string
	}{
		{0, "Immediate"},
		{math.Inf(1), "Never"},
		{math.NaN(), "Never"},
		{-1, "Never"},
		{14.5, "1 year 2 months"},
		{12, "1 year"},
		{24, "2 years"},
		{25.2, "2 years 1 month"},
		{1.5, "1 month"},
		{2500 / 2485.546875, "1 month"},
		{0.5, "15 days"},
		{1.0 / 30, "1 day"},
		{0.01, "Less than 1 day"},
	}
	for _, c := range cases {
		if got := FormatPayback(c.months); got != c.want {
			t.Fatalf("FormatPayback(%v): expected %q, got %q", c.months, c.want, got)
		}
	}
}
