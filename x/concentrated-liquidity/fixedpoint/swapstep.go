package fixedpoint

import "cosmossdk.io/math"

// SwapStepResult is the output of ComputeSwapStep: how far price moved
// within one liquidity-constant sub-step, and how much of each token
// changed hands.
type SwapStepResult struct {
	NextPrice math.Int
	AmountIn  math.Int
	AmountOut math.Int
	FeeAmount math.Int
}

// ComputeSwapStep computes the result of swapping within a single
// liquidity-constant bucket, per spec §4.1/§4.4.
//
// feeRateMillionths is the total fee rate for this step (base + adaptive,
// already summed and clamped by the adaptive fee manager), expressed in
// units of FeeRateDenom (1/1,000,000).
//
// aToB selects which token is input: true means token A is input / token B
// is output (price moves down); false is the reverse (price moves up). This
// mirrors the teacher's oneForZeroStrategy/zeroForOneStrategy split
// (swapstrategy package) generalized to one function parameterized on
// direction instead of two near-duplicate types, since the Q64.64 math here
// has no store-backed state to justify splitting into interface
// implementations the way the tick-array sequence does (see swapstrategy).
func ComputeSwapStep(
	amountRemaining math.Int,
	feeRateMillionths int64,
	liquidity math.Int,
	sqrtPriceCurrent math.Int,
	sqrtPriceTarget math.Int,
	exactIn bool,
	aToB bool,
) SwapStepResult {
	if liquidity.IsZero() {
		// No active liquidity: price leaps straight to the target, nothing
		// is exchanged in this bucket.
		return SwapStepResult{
			NextPrice: sqrtPriceTarget,
			AmountIn:  math.ZeroInt(),
			AmountOut: math.ZeroInt(),
			FeeAmount: math.ZeroInt(),
		}
	}

	feeRate := math.NewInt(feeRateMillionths)
	feeDenom := math.NewInt(FeeRateDenom)

	if exactIn {
		return computeSwapStepExactIn(amountRemaining, feeRate, feeDenom, liquidity, sqrtPriceCurrent, sqrtPriceTarget, aToB)
	}
	return computeSwapStepExactOut(amountRemaining, feeRate, feeDenom, liquidity, sqrtPriceCurrent, sqrtPriceTarget, aToB)
}

func computeSwapStepExactIn(
	amountRemaining, feeRate, feeDenom, liquidity, sqrtPriceCurrent, sqrtPriceTarget math.Int,
	aToB bool,
) SwapStepResult {
	amountRemainingLessFee := MulDivFloor(amountRemaining, feeDenom.Sub(feeRate), feeDenom)

	var amountIn, nextPrice math.Int
	if aToB {
		amountIn = CalcAmount0Delta(liquidity, sqrtPriceTarget, sqrtPriceCurrent, true)
	} else {
		amountIn = CalcAmount1Delta(liquidity, sqrtPriceCurrent, sqrtPriceTarget, true)
	}

	if amountRemainingLessFee.GTE(amountIn) {
		nextPrice = sqrtPriceTarget
	} else if aToB {
		nextPrice = GetNextSqrtPriceFromAmount0RoundingUp(sqrtPriceCurrent, liquidity, amountRemainingLessFee, true)
	} else {
		nextPrice = GetNextSqrtPriceFromAmount1RoundingDown(sqrtPriceCurrent, liquidity, amountRemainingLessFee, true)
	}

	hasReachedTarget := nextPrice.Equal(sqrtPriceTarget)
	if !hasReachedTarget {
		if aToB {
			amountIn = CalcAmount0Delta(liquidity, nextPrice, sqrtPriceCurrent, true)
		} else {
			amountIn = CalcAmount1Delta(liquidity, sqrtPriceCurrent, nextPrice, true)
		}
	}

	// Edge case: precision loss collapses the price step to zero while
	// amount remaining is nonzero. Charge the full remaining amount to the
	// trader rather than spin forever recomputing a zero-sized step -
	// mirrors the guard in swapstrategy.oneForZeroStrategy.
	if !hasReachedTarget && nextPrice.Equal(sqrtPriceCurrent) && amountIn.IsZero() && !amountRemaining.IsZero() {
		amountIn = amountRemaining
	}

	var amountOut math.Int
	if aToB {
		amountOut = CalcAmount1Delta(liquidity, nextPrice, sqrtPriceCurrent, false)
	} else {
		amountOut = CalcAmount0Delta(liquidity, sqrtPriceCurrent, nextPrice, false)
	}

	feeAmount := feeChargeExactIn(hasReachedTarget, amountIn, amountRemaining, feeRate, feeDenom)

	return SwapStepResult{
		NextPrice: nextPrice,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		FeeAmount: feeAmount,
	}
}

// feeChargeExactIn computes the fee for one exact-in step per spec §4.1:
// ceil(amount_in * fee_rate / (1e6 - fee_rate)) when the bucket's target was
// reached with room to spare, else whatever of amount_remaining was not
// consumed as amount_in.
func feeChargeExactIn(hasReachedTarget bool, amountIn, amountRemaining, feeRate, feeDenom math.Int) math.Int {
	if feeRate.IsZero() {
		return math.ZeroInt()
	}
	if hasReachedTarget {
		return MulDivCeil(amountIn, feeRate, feeDenom.Sub(feeRate))
	}
	return amountRemaining.Sub(amountIn)
}

func computeSwapStepExactOut(
	amountRemaining, feeRate, feeDenom, liquidity, sqrtPriceCurrent, sqrtPriceTarget math.Int,
	aToB bool,
) SwapStepResult {
	var amountOut, nextPrice math.Int
	if aToB {
		amountOut = CalcAmount1Delta(liquidity, sqrtPriceCurrent, sqrtPriceTarget, false)
	} else {
		amountOut = CalcAmount0Delta(liquidity, sqrtPriceTarget, sqrtPriceCurrent, false)
	}

	if amountRemaining.GTE(amountOut) {
		nextPrice = sqrtPriceTarget
	} else if aToB {
		nextPrice = GetNextSqrtPriceFromAmount1RoundingDown(sqrtPriceCurrent, liquidity, amountRemaining, false)
	} else {
		nextPrice = GetNextSqrtPriceFromAmount0RoundingUp(sqrtPriceCurrent, liquidity, amountRemaining, false)
	}

	hasReachedTarget := nextPrice.Equal(sqrtPriceTarget)
	if !hasReachedTarget {
		if aToB {
			amountOut = CalcAmount1Delta(liquidity, nextPrice, sqrtPriceCurrent, false)
		} else {
			amountOut = CalcAmount0Delta(liquidity, sqrtPriceCurrent, nextPrice, false)
		}
	}

	var amountIn math.Int
	if aToB {
		amountIn = CalcAmount0Delta(liquidity, nextPrice, sqrtPriceCurrent, true)
	} else {
		amountIn = CalcAmount1Delta(liquidity, sqrtPriceCurrent, nextPrice, true)
	}

	if !hasReachedTarget && nextPrice.Equal(sqrtPriceCurrent) && amountOut.IsZero() && !amountRemaining.IsZero() {
		amountOut = amountRemaining
	}

	feeAmount := math.ZeroInt()
	if !feeRate.IsZero() {
		feeAmount = MulDivCeil(amountIn, feeRate, feeDenom.Sub(feeRate))
	}

	if amountOut.GT(amountRemaining) {
		amountOut = amountRemaining
	}

	return SwapStepResult{
		NextPrice: nextPrice,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		FeeAmount: feeAmount,
	}
}
