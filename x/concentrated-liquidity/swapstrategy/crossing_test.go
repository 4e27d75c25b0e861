package swapstrategy_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/swapstrategy"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/types"
)

func zeroRewards() [fixedpoint.NumRewards]math.Int {
	var r [fixedpoint.NumRewards]math.Int
	for i := range r {
		r[i] = math.ZeroInt()
	}
	return r
}

func TestCrossTick_MirrorReflection(t *testing.T) {
	tick := types.Tick{
		Initialized:          true,
		LiquidityNet:         math.NewInt(500),
		LiquidityGross:       math.NewInt(500),
		FeeGrowthOutsideA:    math.NewInt(30),
		FeeGrowthOutsideB:    math.NewInt(10),
		RewardGrowthsOutside: zeroRewards(),
	}

	upd, liqAfter, err := swapstrategy.CrossTick(
		swapstrategy.BToA{}, tick, math.NewInt(1000),
		math.NewInt(100), math.NewInt(50), zeroRewards(),
	)
	require.NoError(t, err)
	require.True(t, upd.FeeGrowthOutsideA.Equal(math.NewInt(70))) // 100 - 30
	require.True(t, upd.FeeGrowthOutsideB.Equal(math.NewInt(40))) // 50 - 10
	require.True(t, liqAfter.Equal(math.NewInt(1500)))            // b->a adds
}

func TestCrossTick_AToB_SubtractsLiquidity(t *testing.T) {
	tick := types.Tick{
		Initialized:          true,
		LiquidityNet:         math.NewInt(500),
		LiquidityGross:       math.NewInt(500),
		FeeGrowthOutsideA:    math.ZeroInt(),
		FeeGrowthOutsideB:    math.ZeroInt(),
		RewardGrowthsOutside: zeroRewards(),
	}

	_, liqAfter, err := swapstrategy.CrossTick(
		swapstrategy.AToB{}, tick, math.NewInt(1000),
		math.ZeroInt(), math.ZeroInt(), zeroRewards(),
	)
	require.NoError(t, err)
	require.True(t, liqAfter.Equal(math.NewInt(500)))
}
