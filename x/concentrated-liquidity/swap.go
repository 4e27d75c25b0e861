// Package concentratedliquidity implements the deterministic core of a
// concentrated-liquidity swap: given a pool snapshot, a tick-array sequence,
// and a trade request, it walks the discretised price curve, crosses
// initialised ticks, and returns a PostSwapUpdate for the caller to apply
// atomically. Account plumbing, transfers, and persistence are the caller's
// responsibility.
package concentratedliquidity

import (
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/adaptivefee"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/swapstrategy"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/types"
)

// swapState is the loop-local accumulator threaded through each inner step,
// grounded on the teacher's own SwapState in its swaps.go.
type swapState struct {
	amountRemaining  math.Int
	amountCalculated math.Int

	sqrtPrice math.Int
	tickIndex int32
	liquidity math.Int

	// Only one of these two actually changes during a swap - whichever
	// token is the input side - but both are carried so tick crossings
	// always see a consistent pair to mirror-reflect against.
	feeGrowthGlobalA math.Int
	feeGrowthGlobalB math.Int

	protocolFee math.Int

	rewardGrowthsGlobal [fixedpoint.NumRewards]math.Int
}

// Swap runs the core CLMM swap algorithm (spec §4.6). logger may be nil; it
// is used only at Debug level for step/crossing granularity tracing.
// protocolFeeRate is in ten-thousandths per pool.ProtocolFeeRate.
func Swap(
	pool types.PoolSnapshot,
	tickSeq *swapstrategy.Sequence,
	amount math.Int,
	sqrtPriceLimit math.Int,
	exactIn bool,
	aToB bool,
	now uint64,
	adaptiveFee *types.AdaptiveFeeInfo,
	logger log.Logger,
) (types.PostSwapUpdate, error) {
	adjustedLimit := adjustSqrtPriceLimit(sqrtPriceLimit, aToB)
	if adjustedLimit.LT(fixedpoint.MinSqrtPrice) || adjustedLimit.GT(fixedpoint.MaxSqrtPrice) {
		return types.PostSwapUpdate{}, types.SqrtPriceOutOfBoundsError{
			SqrtPriceLimit: adjustedLimit.String(),
			MinSqrtPrice:   fixedpoint.MinSqrtPrice.String(),
			MaxSqrtPrice:   fixedpoint.MaxSqrtPrice.String(),
		}
	}
	if err := validateLimitDirection(pool.SqrtPrice, adjustedLimit, aToB); err != nil {
		return types.PostSwapUpdate{}, err
	}
	if amount.IsZero() {
		return types.PostSwapUpdate{}, types.ZeroTradableAmountError{}
	}

	strategy := swapstrategy.New(aToB)

	var feeManager *adaptivefee.Manager
	var err error
	baseFeeRate := pool.BaseFeeRateMillionths()
	if adaptiveFee != nil {
		feeManager, err = adaptivefee.New(aToB, pool.TickCurrentIndex, now, baseFeeRate, adaptiveFee.Constants, adaptiveFee.Variables)
		if err != nil {
			return types.PostSwapUpdate{}, err
		}
	}

	startSqrtPrice := pool.SqrtPrice
	st := &swapState{
		amountRemaining:     amount,
		amountCalculated:    math.ZeroInt(),
		sqrtPrice:           pool.SqrtPrice,
		tickIndex:           pool.TickCurrentIndex,
		liquidity:           pool.Liquidity,
		feeGrowthGlobalA:    pool.FeeGrowthGlobalA,
		feeGrowthGlobalB:    pool.FeeGrowthGlobalB,
		protocolFee:         math.ZeroInt(),
		rewardGrowthsGlobal: zeroRewards(),
	}

	for st.amountRemaining.IsPositive() && !st.sqrtPrice.Equal(adjustedLimit) {
		if err := runStep(st, strategy, tickSeq, feeManager, pool, baseFeeRate, exactIn, aToB, adjustedLimit, logger); err != nil {
			return types.PostSwapUpdate{}, err
		}
	}

	if feeManager != nil {
		feeManager.UpdateMajorSwapTimestamp(now, startSqrtPrice, st.sqrtPrice)
	}

	if st.amountRemaining.IsPositive() && !exactIn && sqrtPriceLimit.IsZero() {
		return types.PostSwapUpdate{}, types.PartialFillError{AmountRemaining: st.amountRemaining.String()}
	}

	var adaptiveConstants types.AdaptiveFeeConstants
	if adaptiveFee != nil {
		adaptiveConstants = adaptiveFee.Constants
	}
	return buildPostSwapUpdate(st, feeManager, adaptiveConstants, aToB, exactIn, amount), nil
}

// runStep executes exactly one inner loop iteration: derive this step's
// bounded target, run the fixed-point math, apply it to st, and cross a
// tick if the step landed exactly on one (spec §4.4).
func runStep(
	st *swapState,
	strategy swapstrategy.Strategy,
	tickSeq *swapstrategy.Sequence,
	feeManager *adaptivefee.Manager,
	pool types.PoolSnapshot,
	baseFeeRate int64,
	exactIn bool,
	aToB bool,
	adjustedLimit math.Int,
	logger log.Logger,
) error {
	arrIdx, nextTickIndex, isBoundary, err := tickSeq.GetNextInitializedTickIndex(int(st.tickIndex))
	if err != nil {
		return err
	}
	nextTickSqrtPrice := fixedpoint.SqrtPriceFromTick(nextTickIndex)

	target := closerTarget(nextTickSqrtPrice, adjustedLimit, aToB)

	feeRate := baseFeeRate
	skip := false
	if feeManager != nil {
		feeManager.UpdateVolatilityAccumulator()
		total, err := feeManager.GetTotalFeeRate()
		if err != nil {
			return err
		}
		feeRate = total

		bounded := feeManager.GetBoundedSqrtPriceTarget(target, pool.TickSpacing)
		target = bounded.SqrtPrice
		skip = bounded.Skip
	}

	res := fixedpoint.ComputeSwapStep(st.amountRemaining, feeRate, st.liquidity, st.sqrtPrice, target, exactIn, aToB)

	if logger != nil {
		logger.Debug("swap step",
			"sqrt_price_current", st.sqrtPrice.String(),
			"sqrt_price_next", res.NextPrice.String(),
			"amount_in", res.AmountIn.String(),
			"amount_out", res.AmountOut.String(),
		)
	}

	if err := applyStepResult(st, res, exactIn, aToB, pool.ProtocolFeeRate); err != nil {
		return err
	}

	if feeManager != nil {
		if skip {
			feeManager.AdvanceTickGroupAfterSkip(st.sqrtPrice)
		} else {
			feeManager.AdvanceTickGroup()
		}
	}

	if st.sqrtPrice.Equal(nextTickSqrtPrice) {
		if isBoundary {
			// Synthetic MIN_TICK/MAX_TICK marker: nothing stored to cross, just
			// the edge of the world.
			st.tickIndex = int32(nextTickIndex)
			return nil
		}
		tick, err := tickSeq.GetTick(arrIdx, nextTickIndex)
		if err != nil {
			return err
		}
		if tick.Initialized {
			upd, liquidityAfter, err := swapstrategy.CrossTick(
				strategy, tick, st.liquidity,
				st.feeGrowthGlobalA, st.feeGrowthGlobalB,
				st.rewardGrowthsGlobal,
			)
			if err != nil {
				return err
			}
			if err := tickSeq.UpdateTick(arrIdx, nextTickIndex, upd); err != nil {
				return err
			}
			if err := tickSeq.AdvanceArrayIfNeeded(arrIdx, nextTickIndex); err != nil {
				return err
			}
			st.liquidity = liquidityAfter
			if logger != nil {
				logger.Debug("crossed tick", "tick_index", nextTickIndex, "liquidity_after", st.liquidity.String())
			}
		}
		st.tickIndex = int32(strategy.ApplyShiftedTick(nextTickIndex))
	} else {
		st.tickIndex = int32(fixedpoint.TickFromSqrtPriceDirectional(st.sqrtPrice, aToB))
	}

	return nil
}

func applyStepResult(st *swapState, res fixedpoint.SwapStepResult, exactIn, aToB bool, protocolFeeRate uint16) error {
	st.sqrtPrice = res.NextPrice

	protocolFee, feeAfterProtocol := fixedpoint.SplitProtocolFee(res.FeeAmount, int64(protocolFeeRate))
	st.protocolFee = st.protocolFee.Add(protocolFee)

	feeGrowthDelta, err := fixedpoint.FeeGrowthDelta(feeAfterProtocol, st.liquidity)
	if err != nil {
		return err
	}
	if aToB {
		st.feeGrowthGlobalA = fixedpoint.WrapAddU128(st.feeGrowthGlobalA, feeGrowthDelta)
	} else {
		st.feeGrowthGlobalB = fixedpoint.WrapAddU128(st.feeGrowthGlobalB, feeGrowthDelta)
	}

	var nextRemaining math.Int
	if exactIn {
		nextRemaining = st.amountRemaining.Sub(res.AmountIn).Sub(res.FeeAmount)
	} else {
		nextRemaining = st.amountRemaining.Sub(res.AmountOut)
	}
	if nextRemaining.IsNegative() {
		return fixedpoint.AmountRemainingOverflowError{
			Remaining: st.amountRemaining.String(),
			Delta:     res.AmountIn.Add(res.FeeAmount).Add(res.AmountOut).String(),
		}
	}
	st.amountRemaining = nextRemaining

	if exactIn {
		st.amountCalculated = st.amountCalculated.Add(res.AmountOut)
	} else {
		st.amountCalculated = st.amountCalculated.Add(res.AmountIn).Add(res.FeeAmount)
	}
	return nil
}

func closerTarget(nextTickSqrtPrice, limit math.Int, aToB bool) math.Int {
	if aToB {
		if nextTickSqrtPrice.LT(limit) {
			return limit
		}
		return nextTickSqrtPrice
	}
	if nextTickSqrtPrice.GT(limit) {
		return limit
	}
	return nextTickSqrtPrice
}

// adjustSqrtPriceLimit substitutes MIN/MAX for the NO_EXPLICIT_LIMIT sentinel
// (zero), per spec §4.6 pre-check 1.
func adjustSqrtPriceLimit(limit math.Int, aToB bool) math.Int {
	if limit.IsZero() {
		if aToB {
			return fixedpoint.MinSqrtPrice
		}
		return fixedpoint.MaxSqrtPrice
	}
	return limit
}

func validateLimitDirection(currentSqrtPrice, limit math.Int, aToB bool) error {
	valid := limit.LTE(currentSqrtPrice)
	if !aToB {
		valid = limit.GTE(currentSqrtPrice)
	}
	if !valid {
		return types.InvalidSqrtPriceLimitDirectionError{
			CurrentSqrtPrice: currentSqrtPrice.String(),
			SqrtPriceLimit:   limit.String(),
			AToB:             aToB,
		}
	}
	return nil
}

func zeroRewards() [fixedpoint.NumRewards]math.Int {
	var r [fixedpoint.NumRewards]math.Int
	for i := range r {
		r[i] = math.ZeroInt()
	}
	return r
}

// buildPostSwapUpdate assembles the final PostSwapUpdate per spec §4.6's
// output mapping: (amount_a, amount_b) = (spent, received) if a_to_b ==
// exact_in, else swapped.
func buildPostSwapUpdate(
	st *swapState,
	feeManager *adaptivefee.Manager,
	adaptiveConstants types.AdaptiveFeeConstants,
	aToB, exactIn bool,
	originalAmount math.Int,
) types.PostSwapUpdate {
	var spent, received math.Int
	if exactIn {
		spent = originalAmount.Sub(st.amountRemaining)
		received = st.amountCalculated
	} else {
		spent = st.amountCalculated
		received = originalAmount.Sub(st.amountRemaining)
	}

	var amountA, amountB math.Int
	if aToB == exactIn {
		amountA, amountB = spent, received
	} else {
		amountA, amountB = received, spent
	}

	feeGrowthGlobal := st.feeGrowthGlobalB
	if aToB {
		feeGrowthGlobal = st.feeGrowthGlobalA
	}

	upd := types.PostSwapUpdate{
		AmountA:             amountA,
		AmountB:             amountB,
		NextLiquidity:       st.liquidity,
		NextTickIndex:       st.tickIndex,
		NextSqrtPrice:       st.sqrtPrice,
		NextFeeGrowthGlobal: feeGrowthGlobal,
		NextProtocolFee:     st.protocolFee,
	}
	for i := range upd.NextRewardInfos {
		upd.NextRewardInfos[i] = types.RewardInfo{GrowthGlobal: st.rewardGrowthsGlobal[i]}
	}
	if feeManager != nil {
		upd.NextAdaptiveFeeInfo = &types.AdaptiveFeeInfo{
			Constants: adaptiveConstants,
			Variables: feeManager.Variables(),
		}
	}
	return upd
}
