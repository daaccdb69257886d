package money

import "math"

// Amount is a monetary value in minor units of the quote currency.
type Amount = int64

// Round converts a fractional amount of minor units to a whole Amount using
// round half to even, so repeated rounding carries no directional bias.
// Every monetary computation site (discounts, taxes, service fees, unit
// rates) must round through this function.
func Round(v float64) Amount {
	return Amount(math.RoundToEven(v))
}

// Percent applies pct (8.5 means 8.5%) to amount and rounds the result.
func Percent(amount Amount, pct float64) Amount {
	return Round(float64(amount) * pct / 100)
}

// InclusivePortion returns the tax already contained in amount at rate pct,
// back-calculated as amount - amount/(1+pct/100).
func InclusivePortion(amount Amount, pct float64) Amount {
	base := float64(amount)
	return Round(base - base/(1+pct/100))
}
