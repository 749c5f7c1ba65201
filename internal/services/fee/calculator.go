// Package fee computes the platform fee charged on top of a payment's
// principal amount. Rates are basis points out of 10000.
package fee

import "math/bits"

const RateDenominator = 10000

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateFee returns floor(amount * rateBps / 10000). The intermediate
// product is kept in 128 bits so the largest representable amounts cannot
// overflow.
func (c *Calculator) CalculateFee(amount, rateBps uint64) uint64 {
	hi, lo := bits.Mul64(amount, rateBps)
	quo, _ := bits.Div64(hi, lo, RateDenominator)
	return quo
}
