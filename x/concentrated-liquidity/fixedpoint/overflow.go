package fixedpoint

import "cosmossdk.io/math"

// MaxU128 and the i128 bounds delimit the fixed widths the spec's data model
// (§3) assigns to liquidity, sqrt-price, and liquidity-net values. math.Int
// itself is arbitrary precision, so these bounds are enforced explicitly at
// the boundaries listed below rather than relied on to overflow natively.
var (
	MaxU128 = math.NewInt(2).Power(128).SubRaw(1)
	MaxI128 = math.NewInt(2).Power(127).SubRaw(1)
	MinI128 = math.NewInt(2).Power(127).Neg()
)

// CheckU128 validates that v fits in [0, 2^128-1].
func CheckU128(v math.Int, context string) (math.Int, error) {
	if v.IsNegative() || v.GT(MaxU128) {
		return math.Int{}, AmountCalcOverflowError{Context: context}
	}
	return v, nil
}

// CheckI128 validates that v fits in [-2^127, 2^127-1].
func CheckI128(v math.Int, context string) (math.Int, error) {
	if v.LT(MinI128) || v.GT(MaxI128) {
		return math.Int{}, AmountCalcOverflowError{Context: context}
	}
	return v, nil
}

// MulDivFloor returns floor(a*b/c). c must be non-zero.
func MulDivFloor(a, b, c math.Int) math.Int {
	return a.Mul(b).Quo(c)
}

// MulDivCeil returns ceil(a*b/c). c must be non-zero.
func MulDivCeil(a, b, c math.Int) math.Int {
	product := a.Mul(b)
	q := product.Quo(c)
	if product.Mod(c).IsZero() {
		return q
	}
	return q.AddRaw(1)
}

// CeilDiv returns ceil(a/b). b must be non-zero.
func CeilDiv(a, b math.Int) math.Int {
	q := a.Quo(b)
	if a.Mod(b).IsZero() {
		return q
	}
	return q.AddRaw(1)
}

// AddLiquidityDelta applies a signed liquidity_net delta to active
// liquidity, per spec §4.1. Overflow/underflow is fatal: a negative result
// or a result exceeding u128 surfaces as LiquidityNetOverflowError rather
// than wrapping, since active liquidity going negative would be a silent
// accounting corruption.
func AddLiquidityDelta(liquidity math.Int, delta math.Int) (math.Int, error) {
	next := liquidity.Add(delta)
	if next.IsNegative() || next.GT(MaxU128) {
		return math.Int{}, LiquidityNetOverflowError{
			Liquidity: liquidity.String(),
			Delta:     delta.String(),
		}
	}
	return next, nil
}
