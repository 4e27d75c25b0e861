package fixedpoint

import (
	"math/big"

	"cosmossdk.io/math"
)

// precisionBits is the big.Float mantissa precision used for every
// tick<->sqrt-price conversion. It is fixed module-wide so that the forward
// and inverse maps stay mutually consistent (same rounding everywhere).
const precisionBits = 256

// tickBase is 1.0001, the per-tick price ratio, computed once at this
// precision.
var tickBase = func() *big.Float {
	f := new(big.Float).SetPrec(precisionBits)
	f.SetString("1.0001")
	return f
}()

// SqrtPriceFromTick returns the Q64.64 sqrt-price for the given tick index:
// sqrt(1.0001^tick), scaled by 2^64 and floored to an integer. Tick index i
// represents sqrt-price 1.0001^(i/2) per spec §3.
//
// Panics if tick is outside [MinTick, MaxTick]; the orchestrator never calls
// this with an out-of-range tick because every caller validates bounds
// first (spec §4.6 pre-checks).
func SqrtPriceFromTick(tick int) math.Int {
	if tick < MinTick || tick > MaxTick {
		panic(TickOutOfBoundsError{Tick: tick})
	}

	price := powTickBase(tick)
	sqrtPrice := new(big.Float).SetPrec(precisionBits).Sqrt(price)

	scaled := new(big.Float).SetPrec(precisionBits).Mul(sqrtPrice, new(big.Float).SetPrec(precisionBits).SetInt(Q64.BigInt()))

	i, _ := scaled.Int(nil)
	return math.NewIntFromBigInt(i)
}

// powTickBase computes 1.0001^tick at module precision via binary
// exponentiation, inverting for negative exponents.
func powTickBase(tick int) *big.Float {
	exp := tick
	neg := exp < 0
	if neg {
		exp = -exp
	}

	result := new(big.Float).SetPrec(precisionBits).SetInt64(1)
	base := new(big.Float).SetPrec(precisionBits).Copy(tickBase)
	for exp > 0 {
		if exp&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		exp >>= 1
	}

	if neg {
		one := new(big.Float).SetPrec(precisionBits).SetInt64(1)
		result.Quo(one, result)
	}
	return result
}

// TickFromSqrtPrice returns the greatest tick t such that
// SqrtPriceFromTick(t) <= sqrtPrice. Because SqrtPriceFromTick is strictly
// increasing on [MinTick, MaxTick], this is the unique inverse satisfying
// TickFromSqrtPrice(SqrtPriceFromTick(t)) == t for every t in range — the
// round-trip law required by spec §8.
//
// This is the direction-agnostic inverse. Callers that need the "shifted
// tick" convention of spec §3 invariant 6 (current_tick_index == T-1 when
// price sits exactly on T and direction is a->b) must call
// TickFromSqrtPriceDirectional instead; centralizing that asymmetry here,
// rather than scattering "-1 if a_to_b" checks through the swap loop, is the
// design note in spec §9.
func TickFromSqrtPrice(sqrtPrice math.Int) int {
	lo, hi := MinTick, MaxTick
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if SqrtPriceFromTick(mid).LTE(sqrtPrice) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// TickFromSqrtPriceDirectional applies the shifted-tick convention on top of
// TickFromSqrtPrice: when sqrtPrice is exactly the sqrt-price of a tick T
// (any tick; tick spacing is not considered) and the direction is a->b, the
// returned index is T-1 rather than T.
func TickFromSqrtPriceDirectional(sqrtPrice math.Int, aToB bool) int {
	t := TickFromSqrtPrice(sqrtPrice)
	if aToB && SqrtPriceFromTick(t).Equal(sqrtPrice) {
		return t - 1
	}
	return t
}
