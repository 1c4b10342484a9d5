package curve

import (
	"github.com/shopspring/decimal"
)

// BlendDigits is the number of significant digits kept after every blend step
const BlendDigits = 10

// RoundSignificant rounds d to digits significant decimal digits, half away from zero
func RoundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	// Integer digit count of |d|: coefficient length shifted by exponent
	magnitude := int32(d.NumDigits()) + d.Exponent()
	return d.Round(digits - magnitude)
}

// blend computes a*t + b*(1-t) at BlendDigits precision
// 1-t is taken in float64 before conversion so factors match their float callers
func blend(a, b decimal.Decimal, t float64) decimal.Decimal {
	ft := decimal.NewFromFloat(t)
	fr := decimal.NewFromFloat(1.0 - t)
	return RoundSignificant(a.Mul(ft).Add(b.Mul(fr)), BlendDigits)
}

// Lerp blends a toward b: a weighted by t, b by 1-t
func Lerp(a, b, t float64) float64 {
	return blend(decimal.NewFromFloat(a), decimal.NewFromFloat(b), t).InexactFloat64()
}
