package swapstrategy_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/swapstrategy"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/types"
)

func initTick(arr *types.TickArray, tickIndex int, net int64) {
	off := arr.OffsetOf(tickIndex)
	t := arr.Ticks[off]
	t.Initialized = true
	t.LiquidityNet = math.NewInt(net)
	t.LiquidityGross = math.NewInt(net).Abs()
	t.FeeGrowthOutsideA = math.ZeroInt()
	t.FeeGrowthOutsideB = math.ZeroInt()
	arr.Ticks[off] = t
}

func TestSequence_GetNextInitializedTickIndex_BToA(t *testing.T) {
	spacing := int32(8)
	arr0 := types.NewTickArray(0, spacing)
	arr1 := types.NewTickArray(fixedpoint.TickArraySize*int(spacing), spacing)
	initTick(arr0, 448, 100)
	initTick(arr1, 720, -100)

	seq, err := swapstrategy.NewSequence([]*types.TickArray{arr0, arr1}, spacing, swapstrategy.BToA{}, 255)
	require.NoError(t, err)

	_, tickIdx, isBoundary, err := seq.GetNextInitializedTickIndex(255)
	require.NoError(t, err)
	require.False(t, isBoundary)
	require.Equal(t, 448, tickIdx)
}

func TestSequence_GetNextInitializedTickIndex_AToB_Inclusive(t *testing.T) {
	spacing := int32(128)
	// Third array of the positive side: covers ticks 22528..33791.
	arr := types.NewTickArray(2*fixedpoint.TickArraySize*int(spacing), spacing)
	initTick(arr, 29952, 5_000_000)
	initTick(arr, 30336, 6_000_000)

	seq, err := swapstrategy.NewSequence([]*types.TickArray{arr}, spacing, swapstrategy.AToB{}, 29952)
	require.NoError(t, err)

	// Sitting exactly on an initialised tick: a->b search is inclusive, so
	// this tick itself is returned.
	_, tickIdx, isBoundary, err := seq.GetNextInitializedTickIndex(29952)
	require.NoError(t, err)
	require.False(t, isBoundary)
	require.Equal(t, 29952, tickIdx)
}

func TestSequence_OverrunIsFatal(t *testing.T) {
	spacing := int32(8)
	arr := types.NewTickArray(0, spacing)

	seq, err := swapstrategy.NewSequence([]*types.TickArray{arr}, spacing, swapstrategy.BToA{}, 0)
	require.NoError(t, err)

	_, _, _, err = seq.GetNextInitializedTickIndex(0)
	require.Error(t, err)
	require.IsType(t, types.TickArraySequenceInvalidIndexError{}, err)
}

func TestSequence_AdvanceArrayIfNeeded_BToA_AtLastOffset(t *testing.T) {
	spacing := int32(1)
	arr0 := types.NewTickArray(0, spacing)
	arr1 := types.NewTickArray(fixedpoint.TickArraySize, spacing)

	seq, err := swapstrategy.NewSequence([]*types.TickArray{arr0, arr1}, spacing, swapstrategy.BToA{}, 0)
	require.NoError(t, err)

	lastTick := fixedpoint.TickArraySize - 1
	require.NoError(t, seq.AdvanceArrayIfNeeded(0, lastTick))

	_, tickIdx, _, err := seq.GetNextInitializedTickIndex(lastTick)
	require.Error(t, err) // arr1 has nothing initialised, but the pointer moved there.
	require.Equal(t, 0, tickIdx)
}
