package swapstrategy

import (
	"cosmossdk.io/math"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/types"
)

// CrossTick computes the outside-growth mirror reflection and new active
// liquidity for crossing tick (spec §4.3). feeGrowthGlobalA/B and
// rewardGrowthsGlobal must already reflect any accrual from the step that
// reached this tick.
func CrossTick(
	strategy Strategy,
	tick types.Tick,
	liquidityBefore math.Int,
	feeGrowthGlobalA, feeGrowthGlobalB math.Int,
	rewardGrowthsGlobal [fixedpoint.NumRewards]math.Int,
) (types.TickUpdate, math.Int, error) {
	// Growth comparisons wrap mod 2^128, per the spec's open question on
	// wrapping_add/sub semantics (fixedpoint.WrapSubU128).
	upd := types.TickUpdate{
		FeeGrowthOutsideA: fixedpoint.WrapSubU128(feeGrowthGlobalA, tick.FeeGrowthOutsideA),
		FeeGrowthOutsideB: fixedpoint.WrapSubU128(feeGrowthGlobalB, tick.FeeGrowthOutsideB),
	}
	for i := range upd.RewardGrowthsOutside {
		upd.RewardGrowthsOutside[i] = fixedpoint.WrapSubU128(rewardGrowthsGlobal[i], tick.RewardGrowthsOutside[i])
	}

	if _, err := fixedpoint.CheckI128(tick.LiquidityNet, "tick liquidity_net"); err != nil {
		return types.TickUpdate{}, math.Int{}, err
	}

	liquidityAfter, err := fixedpoint.AddLiquidityDelta(liquidityBefore, strategy.CrossLiquidityDelta(tick.LiquidityNet))
	if err != nil {
		return types.TickUpdate{}, math.Int{}, err
	}

	return upd, liquidityAfter, nil
}
