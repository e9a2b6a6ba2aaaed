// Package money holds the decimal conventions used by every payroll amount:
// two fractional digits, rounded half away from zero.
package money

import "github.com/shopspring/decimal"

const Places = 2

var (
	Zero    = decimal.Zero
	Hundred = decimal.NewFromInt(100)
	Twelve  = decimal.NewFromInt(12)
)

func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Percent returns base * pct / 100 rounded to two places.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return Round(base.Mul(pct).Div(Hundred))
}

func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return Zero
	}
	return d
}

func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func String(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

func FromFloat(f float64) decimal.Decimal {
	return Round(decimal.NewFromFloat(f))
}
