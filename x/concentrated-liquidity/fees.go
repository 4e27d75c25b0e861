package concentratedliquidity

import (
	"cosmossdk.io/math"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
)

// TickFeeGrowthInsideRange reconstructs the one-sided fee growth accrued
// strictly inside [lowerTick, upperTick] from the two boundary ticks' stored
// outside-growth snapshots and the pool's current global accumulator - the
// same global-minus-outside reconstruction cgsingh33-osmosis's
// x/concentrated-liquidity/fees.go:calculateFeeGrowth performs per boundary
// tick. Call once per token side (A and B).
func TickFeeGrowthInsideRange(
	feeGrowthGlobal math.Int,
	tickCurrentIndex, lowerTickIndex, upperTickIndex int32,
	lowerOutside, upperOutside math.Int,
) math.Int {
	var belowLower math.Int
	if tickCurrentIndex >= lowerTickIndex {
		belowLower = lowerOutside
	} else {
		belowLower = fixedpoint.WrapSubU128(feeGrowthGlobal, lowerOutside)
	}

	var aboveUpper math.Int
	if tickCurrentIndex < upperTickIndex {
		aboveUpper = upperOutside
	} else {
		aboveUpper = fixedpoint.WrapSubU128(feeGrowthGlobal, upperOutside)
	}

	return fixedpoint.WrapSubU128(fixedpoint.WrapSubU128(feeGrowthGlobal, belowLower), aboveUpper)
}
