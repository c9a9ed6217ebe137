// Package money provides cent-precision helpers for monetary values.
//
// Every monetary value in the tracker passes through RoundCents before it is
// stored or compared, so stored values always carry at most two fractional
// digits.
package money

import "github.com/shopspring/decimal"

// RoundCents rounds a value to the nearest cent, half up.
// It is idempotent: RoundCents(RoundCents(x)) == RoundCents(x).
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ClampMin returns d, raised to floor if it is smaller.
func ClampMin(d, floor decimal.Decimal) decimal.Decimal {
	if d.LessThan(floor) {
		return floor
	}
	return d
}

// Sum adds all values and rounds the result to cents.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return RoundCents(sum)
}
