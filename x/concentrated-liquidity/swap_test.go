package concentratedliquidity_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	concentratedliquidity "github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/swapstrategy"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/types"
)

func basicPool(tickSpacing int32, tickIndex int32, liquidity int64) types.PoolSnapshot {
	return types.PoolSnapshot{
		TickSpacing:      tickSpacing,
		FeeRate:          1000,
		ProtocolFeeRate:  0,
		Liquidity:        math.NewInt(liquidity),
		SqrtPrice:        fixedpoint.SqrtPriceFromTick(int(tickIndex)),
		TickCurrentIndex: tickIndex,
		FeeGrowthGlobalA: math.ZeroInt(),
		FeeGrowthGlobalB: math.ZeroInt(),
	}
}

func initTickInArray(arr *types.TickArray, tickIndex int, net int64) {
	off := arr.OffsetOf(tickIndex)
	t := arr.Ticks[off]
	t.Initialized = true
	t.LiquidityNet = math.NewInt(net)
	t.LiquidityGross = math.NewInt(net).Abs()
	t.FeeGrowthOutsideA = math.ZeroInt()
	t.FeeGrowthOutsideB = math.ZeroInt()
	arr.Ticks[off] = t
}

// TestSwap_NoOpAtLimit covers spec §8's "sqrt_price_limit == current_sqrt_price
// succeeds as a no-op" boundary law.
func TestSwap_NoOpAtLimit(t *testing.T) {
	pool := basicPool(8, 255, 1_000_000)
	arr := types.NewTickArray(0, 8)
	seq, err := swapstrategy.NewSequence([]*types.TickArray{arr}, 8, swapstrategy.New(false), 255)
	require.NoError(t, err)

	upd, err := concentratedliquidity.Swap(pool, seq, math.NewInt(1000), pool.SqrtPrice, true, false, 1000, nil, nil)
	require.NoError(t, err)
	require.True(t, upd.AmountA.IsZero())
	require.True(t, upd.AmountB.IsZero())
}

func TestSwap_RejectsZeroAmount(t *testing.T) {
	pool := basicPool(8, 0, 1_000_000)
	arr := types.NewTickArray(0, 8)
	seq, err := swapstrategy.NewSequence([]*types.TickArray{arr}, 8, swapstrategy.New(true), 0)
	require.NoError(t, err)

	_, err = concentratedliquidity.Swap(pool, seq, math.ZeroInt(), math.ZeroInt(), true, true, 1000, nil, nil)
	require.Error(t, err)
	require.IsType(t, types.ZeroTradableAmountError{}, err)
}

func TestSwap_RejectsInvalidLimitDirection(t *testing.T) {
	pool := basicPool(8, 0, 1_000_000)
	arr := types.NewTickArray(0, 8)
	seq, err := swapstrategy.NewSequence([]*types.TickArray{arr}, 8, swapstrategy.New(true), 0)
	require.NoError(t, err)

	badLimit := fixedpoint.SqrtPriceFromTick(100) // above current, invalid for a->b
	_, err = concentratedliquidity.Swap(pool, seq, math.NewInt(1000), badLimit, true, true, 1000, nil, nil)
	require.Error(t, err)
	require.IsType(t, types.InvalidSqrtPriceLimitDirectionError{}, err)
}

// arraysToMaxTick builds consecutive empty tick arrays from startTick up
// through (and past) fixedpoint.MaxTick, so the sequence's window genuinely
// reaches the global bound and the MIN_TICK/MAX_TICK sentinel applies.
func arraysToMaxTick(startTick int32, tickSpacing int32) []*types.TickArray {
	var arrays []*types.TickArray
	span := int32(fixedpoint.TickArraySize) * tickSpacing
	cur := startTick
	for cur <= fixedpoint.MaxTick {
		arrays = append(arrays, types.NewTickArray(int(cur), tickSpacing))
		cur += span
	}
	return arrays
}

func TestSwap_PartialFillRejectedOnImplicitLimit(t *testing.T) {
	tickSpacing := int32(1)
	startTick := int32(442369 - (442369 % fixedpoint.TickArraySize))
	pool := basicPool(tickSpacing, 442369, 0)
	arrays := arraysToMaxTick(startTick, tickSpacing)

	seq, err := swapstrategy.NewSequence(arrays, tickSpacing, swapstrategy.New(false), int(pool.TickCurrentIndex))
	require.NoError(t, err)

	_, err = concentratedliquidity.Swap(pool, seq, math.NewInt(1_000_000_000), math.ZeroInt(), false, false, 1000, nil, nil)
	require.Error(t, err)
	require.IsType(t, types.PartialFillError{}, err)
}

func TestSwap_ExplicitMaxLimitSucceedsWithZeroTrade(t *testing.T) {
	tickSpacing := int32(1)
	startTick := int32(442369 - (442369 % fixedpoint.TickArraySize))
	pool := basicPool(tickSpacing, 442369, 0)
	arrays := arraysToMaxTick(startTick, tickSpacing)

	seq, err := swapstrategy.NewSequence(arrays, tickSpacing, swapstrategy.New(false), int(pool.TickCurrentIndex))
	require.NoError(t, err)

	upd, err := concentratedliquidity.Swap(pool, seq, math.NewInt(1_000_000_000), fixedpoint.MaxSqrtPrice, false, false, 1000, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int32(fixedpoint.MaxTick), upd.NextTickIndex)
}

// TestSwap_CrossesInitializedTick is a smaller-scale analogue of spec §8
// scenario 1: a b->a swap across an empty-liquidity range that must cross
// two initialised, zero-net ticks without moving any tokens.
func TestSwap_CrossesInitializedTick(t *testing.T) {
	tickSpacing := int32(8)
	pool := basicPool(tickSpacing, 255, 0)

	span := fixedpoint.TickArraySize * int(tickSpacing)
	arr0 := types.NewTickArray(0, tickSpacing)
	arr1 := types.NewTickArray(span, tickSpacing)
	arr2 := types.NewTickArray(2*span, tickSpacing)
	initTickInArray(arr0, 448, 0)
	initTickInArray(arr1, 720, 0)

	seq, err := swapstrategy.NewSequence([]*types.TickArray{arr0, arr1, arr2}, tickSpacing, swapstrategy.New(false), int(pool.TickCurrentIndex))
	require.NoError(t, err)

	limit := fixedpoint.SqrtPriceFromTick(1720)
	upd, err := concentratedliquidity.Swap(pool, seq, math.NewInt(100000), limit, false, false, 1000, nil, nil)
	require.NoError(t, err)
	require.True(t, upd.AmountA.IsZero())
	require.True(t, upd.AmountB.IsZero())
	require.Equal(t, int32(1720), upd.NextTickIndex)
}
