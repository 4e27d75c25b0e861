package fixedpoint

import "cosmossdk.io/math"

// SplitProtocolFee returns (protocolFee, feeAfterProtocol) for a fee amount
// collected on one swap step, per spec §4.1:
//
//	protocol_fee = floor(fee_amount * protocol_fee_rate / PROTOCOL_FEE_DENOM)
func SplitProtocolFee(feeAmount math.Int, protocolFeeRate int64) (protocolFee, feeAfterProtocol math.Int) {
	if protocolFeeRate == 0 || feeAmount.IsZero() {
		return math.ZeroInt(), feeAmount
	}
	protocolFee = MulDivFloor(feeAmount, math.NewInt(protocolFeeRate), math.NewInt(ProtocolFeeDenom))
	return protocolFee, feeAmount.Sub(protocolFee)
}

// FeeGrowthDelta returns the per-unit-liquidity fee growth contributed by
// feeAfterProtocol, skipped (returns zero) when liquidity is zero per spec
// §4.1. The update is a wrapping add in the Q64.64 domain (spec §9's open
// question on wrap semantics): callers add this delta to
// fee_growth_global_{a,b} with WrapAddU128, not plain Add. The intermediate
// multiply-then-shift-right (feeAfterProtocol * Q64 / liquidity) is checked
// against the u128 width before it ever reaches WrapAddU128, since a delta
// that doesn't fit u128 on its own indicates a corrupt fee/liquidity input
// rather than an intentional wrap.
func FeeGrowthDelta(feeAfterProtocol, liquidity math.Int) (math.Int, error) {
	if liquidity.IsZero() {
		return math.ZeroInt(), nil
	}
	delta := feeAfterProtocol.Mul(Q64).Quo(liquidity)
	if delta.IsNegative() || delta.GT(MaxU128) {
		return math.Int{}, MultiplicationShiftRightOverflowError{Context: "fee growth delta"}
	}
	return delta, nil
}

// wrapModulus is 2^128, the modulus every fee-growth wrapping operation is
// taken against (spec §9: "wrapping addition... is intentional, 256-bit-like
// mod arithmetic over u128").
var wrapModulus = math.NewInt(2).Power(128)

// WrapAddU128 adds delta to v modulo 2^128, preserving the intentional wrap
// semantics of fee_growth_global accumulation.
func WrapAddU128(v, delta math.Int) math.Int {
	return v.Add(delta).Mod(wrapModulus)
}

// WrapSubU128 subtracts delta from v modulo 2^128, used when reconstructing
// fee-growth-outside by mirror reflection (global - outside) and when
// comparing two fee growth snapshots.
func WrapSubU128(v, delta math.Int) math.Int {
	return v.Sub(delta).Mod(wrapModulus)
}
