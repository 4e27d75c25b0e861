package types

import (
	"cosmossdk.io/math"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
)

// PostSwapUpdate is the core's sole output (spec §3/§6): a value the caller
// applies atomically to persisted pool state. Nothing is mutated in place
// during a swap; tick-array slots are the only exception, written as each
// tick is crossed, per §5's shared-resource model.
type PostSwapUpdate struct {
	AmountA math.Int
	AmountB math.Int

	NextLiquidity math.Int
	NextTickIndex int32
	NextSqrtPrice math.Int

	// NextFeeGrowthGlobal is the updated accumulator for whichever token was
	// the swap's input side; the caller knows from a_to_b which of its two
	// stored fee_growth_global_{a,b} fields this replaces.
	NextFeeGrowthGlobal math.Int

	NextRewardInfos [fixedpoint.NumRewards]RewardInfo

	NextProtocolFee math.Int

	// NextAdaptiveFeeInfo is nil when the swap was not adaptive-fee aware.
	NextAdaptiveFeeInfo *AdaptiveFeeInfo
}
