package fixedpoint

import "cosmossdk.io/math"

// CalcAmount0Delta returns the amount of token A consumed/produced when
// liquidity L is held constant while sqrt-price moves between sqrtA and
// sqrtB (order-independent):
//
//	amount0 = L * |sqrtB - sqrtA| * Q64 / (sqrtA * sqrtB)
//
// roundUp selects ceiling (amount owed by the trader) vs floor (amount owed
// to the trader), per spec §4.1's "amounts owed by the trader round UP;
// amounts owed to the trader round DOWN" rule.
func CalcAmount0Delta(liquidity, sqrtA, sqrtB math.Int, roundUp bool) math.Int {
	if liquidity.IsZero() || sqrtA.Equal(sqrtB) {
		return math.ZeroInt()
	}
	lower, upper := sqrtA, sqrtB
	if lower.GT(upper) {
		lower, upper = upper, lower
	}

	numerator := liquidity.Mul(upper.Sub(lower)).Mul(Q64)
	denominator := lower.Mul(upper)

	if roundUp {
		return CeilDiv(numerator, denominator)
	}
	return numerator.Quo(denominator)
}

// CalcAmount1Delta returns the amount of token B consumed/produced when
// liquidity L is held constant while sqrt-price moves between sqrtA and
// sqrtB (order-independent):
//
//	amount1 = L * |sqrtB - sqrtA| / Q64
func CalcAmount1Delta(liquidity, sqrtA, sqrtB math.Int, roundUp bool) math.Int {
	if liquidity.IsZero() || sqrtA.Equal(sqrtB) {
		return math.ZeroInt()
	}
	lower, upper := sqrtA, sqrtB
	if lower.GT(upper) {
		lower, upper = upper, lower
	}

	numerator := liquidity.Mul(upper.Sub(lower))
	if roundUp {
		return CeilDiv(numerator, Q64)
	}
	return numerator.Quo(Q64)
}

// GetNextSqrtPriceFromAmount0RoundingUp solves for the next sqrt-price given
// an exact amount of token A being added to (add=true) or removed from
// (add=false) the pool, holding liquidity constant. Rounds the result up so
// that recomputing amount0 from (sqrtPrice, next) never exceeds the amount
// actually supplied.
func GetNextSqrtPriceFromAmount0RoundingUp(sqrtPrice, liquidity, amount math.Int, add bool) math.Int {
	if amount.IsZero() {
		return sqrtPrice
	}
	numerator := liquidity.Mul(Q64)
	product := amount.Mul(sqrtPrice)

	if add {
		denominator := numerator.Add(product)
		return MulDivCeil(numerator, sqrtPrice, denominator)
	}

	denominator := numerator.Sub(product)
	return MulDivCeil(numerator, sqrtPrice, denominator)
}

// GetNextSqrtPriceFromAmount1RoundingDown solves for the next sqrt-price
// given an exact amount of token B being added to (add=true) or removed
// from (add=false) the pool, holding liquidity constant. Rounds down for the
// same under-charging defense as the amount0 variant rounds up: the added
// quotient is floored and the removed quotient is ceiled.
func GetNextSqrtPriceFromAmount1RoundingDown(sqrtPrice, liquidity, amount math.Int, add bool) math.Int {
	if add {
		return sqrtPrice.Add(amount.Mul(Q64).Quo(liquidity))
	}
	return sqrtPrice.Sub(CeilDiv(amount.Mul(Q64), liquidity))
}
