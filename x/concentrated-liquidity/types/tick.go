package types

import (
	"cosmossdk.io/math"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
)

// Tick is the per-tick state the spec's data model (§3) names. Tick index i
// represents sqrt-price 1.0001^(i/2).
type Tick struct {
	Initialized bool

	// LiquidityNet is the signed liquidity delta applied when this tick is
	// crossed (i128).
	LiquidityNet math.Int

	// LiquidityGross is the sum of absolute position contributions at this
	// tick (u128); must be > 0 for any initialised tick (spec §3 invariant
	// 3).
	LiquidityGross math.Int

	FeeGrowthOutsideA math.Int
	FeeGrowthOutsideB math.Int

	RewardGrowthsOutside [fixedpoint.NumRewards]math.Int
}

// NewUninitializedTick returns the zero-value tick used to fill an array's
// unoccupied slots.
func NewUninitializedTick() Tick {
	rewards := [fixedpoint.NumRewards]math.Int{}
	for i := range rewards {
		rewards[i] = math.ZeroInt()
	}
	return Tick{
		LiquidityNet:         math.ZeroInt(),
		LiquidityGross:       math.ZeroInt(),
		FeeGrowthOutsideA:    math.ZeroInt(),
		FeeGrowthOutsideB:    math.ZeroInt(),
		RewardGrowthsOutside: rewards,
	}
}

// TickUpdate is the rewritten state of one tick after it has been crossed
// (spec §4.3): outside-growths are mirrored about the global values, and
// liquidity_net/gross are unchanged by crossing (crossing changes the pool's
// active liquidity, computed by swapstrategy.CrossTick, not the tick's own
// stored net/gross).
type TickUpdate struct {
	FeeGrowthOutsideA    math.Int
	FeeGrowthOutsideB    math.Int
	RewardGrowthsOutside [fixedpoint.NumRewards]math.Int
}
