package fixedpoint_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
)

func TestComputeSwapStep_ZeroLiquidityJumpsToTarget(t *testing.T) {
	current := fixedpoint.SqrtPriceFromTick(0)
	target := fixedpoint.SqrtPriceFromTick(100)

	res := fixedpoint.ComputeSwapStep(math.NewInt(1_000_000), 3000, math.ZeroInt(), current, target, true, false)

	require.True(t, res.NextPrice.Equal(target))
	require.True(t, res.AmountIn.IsZero())
	require.True(t, res.AmountOut.IsZero())
	require.True(t, res.FeeAmount.IsZero())
}

func TestComputeSwapStep_ExactInReachesTarget(t *testing.T) {
	current := fixedpoint.SqrtPriceFromTick(0)
	target := fixedpoint.SqrtPriceFromTick(10)
	liquidity := math.NewInt(1_000_000_000)

	res := fixedpoint.ComputeSwapStep(math.NewInt(1_000_000_000_000), 0, liquidity, current, target, true, false)

	require.True(t, res.NextPrice.Equal(target))
	require.True(t, res.AmountOut.IsPositive())
}

// TestComputeSwapStep_ExactInRoundingInvariant is the universal property
// from spec §8 invariant 4: in exact-in, amount_in_sum + fee_sum never
// exceeds the amount originally offered.
func TestComputeSwapStep_ExactInRoundingInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		aToB := rapid.Bool().Draw(rt, "aToB")
		tickCurrent := rapid.IntRange(-5000, 5000).Draw(rt, "tickCurrent")
		tickDelta := rapid.IntRange(1, 2000).Draw(rt, "tickDelta")
		tickTarget := tickCurrent + tickDelta
		if aToB {
			tickTarget = tickCurrent - tickDelta
		}
		if tickTarget < fixedpoint.MinTick || tickTarget > fixedpoint.MaxTick {
			return
		}

		liquidity := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "liquidity"))
		amountRemaining := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "amountRemaining"))
		feeRate := rapid.Int64Range(0, 50_000).Draw(rt, "feeRate")

		current := fixedpoint.SqrtPriceFromTick(tickCurrent)
		target := fixedpoint.SqrtPriceFromTick(tickTarget)

		res := fixedpoint.ComputeSwapStep(amountRemaining, feeRate, liquidity, current, target, true, aToB)

		require.True(rt, res.AmountIn.Add(res.FeeAmount).LTE(amountRemaining),
			"amountIn (%s) + fee (%s) must not exceed amountRemaining (%s)",
			res.AmountIn, res.FeeAmount, amountRemaining)
	})
}

// TestComputeSwapStep_ExactOutRoundingInvariant is spec §8 invariant 4's
// exact-out half: the trader never receives more than requested.
func TestComputeSwapStep_ExactOutRoundingInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		aToB := rapid.Bool().Draw(rt, "aToB")
		tickCurrent := rapid.IntRange(-5000, 5000).Draw(rt, "tickCurrent")
		tickDelta := rapid.IntRange(1, 2000).Draw(rt, "tickDelta")
		tickTarget := tickCurrent + tickDelta
		if aToB {
			tickTarget = tickCurrent - tickDelta
		}
		if tickTarget < fixedpoint.MinTick || tickTarget > fixedpoint.MaxTick {
			return
		}

		liquidity := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "liquidity"))
		amountRemaining := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "amountRemaining"))
		feeRate := rapid.Int64Range(0, 50_000).Draw(rt, "feeRate")

		current := fixedpoint.SqrtPriceFromTick(tickCurrent)
		target := fixedpoint.SqrtPriceFromTick(tickTarget)

		res := fixedpoint.ComputeSwapStep(amountRemaining, feeRate, liquidity, current, target, false, aToB)

		require.True(rt, res.AmountOut.LTE(amountRemaining),
			"amountOut (%s) must not exceed requested amountRemaining (%s)", res.AmountOut, amountRemaining)
	})
}
