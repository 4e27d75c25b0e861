// Package fixedpoint implements the Q64.64 fixed-point primitives that the
// concentrated-liquidity swap core is built on: sqrt-price <-> tick
// conversion, checked/rounded arithmetic, and the per-step swap math.
//
// Values are held in cosmossdk.io/math.Int, the arbitrary-precision integer
// type the rest of the Cosmos SDK ecosystem uses to carry on-chain-shaped
// fixed-width numbers (u128, i128, ...). The width itself is enforced at the
// edges (CheckU128/CheckI128 in overflow.go) rather than baked into the Go
// type.
package fixedpoint

import "cosmossdk.io/math"

// Q64 is 2^64, the implicit denominator of every sqrt-price value.
var Q64 = math.NewInt(2).Power(64)

const (
	// TickArraySize is the number of ticks held by one tick-array shard.
	TickArraySize = 88

	// MinTick and MaxTick bound every valid tick index.
	MinTick = -443636
	MaxTick = 443636

	// ProtocolFeeDenom, FeeRateDenom, and FeeRateHardLimit are bit-exact
	// protocol constants (§6).
	ProtocolFeeDenom = 10000
	FeeRateDenom     = 1_000_000
	FeeRateHardLimit = 60_000

	// Scale is the fixed-point scale applied to the volatility accumulator:
	// one unit of |tick group delta| contributes Scale to the accumulator.
	Scale = 10_000

	// ControlDenom is the denominator of the adaptive fee control factor.
	ControlDenom = 100_000

	// MaxReferenceAgeSeconds bounds how long a continuously "high-frequency"
	// trader can pin the volatility reference before it is forcibly reset
	// (§4.5.3). Not specified numerically by the spec; chosen as one day of
	// continuous trading activity — see DESIGN.md Open Questions.
	MaxReferenceAgeSeconds uint64 = 86400

	// NumRewards is the number of extra reward tokens a tick/position tracks
	// growth for, matching the teacher's reward-infos array width.
	NumRewards = 3
)

// MinSqrtPrice and MaxSqrtPrice are computed once at init time from
// SqrtPriceFromTick, not hardcoded, so they are guaranteed consistent with
// the forward conversion (spec §6: "MIN/MAX sqrt-prices being
// sqrt_price_from_tick(MIN_TICK)/(MAX_TICK)").
var (
	MinSqrtPrice math.Int
	MaxSqrtPrice math.Int
)

func init() {
	MinSqrtPrice = SqrtPriceFromTick(MinTick)
	MaxSqrtPrice = SqrtPriceFromTick(MaxTick)
}
