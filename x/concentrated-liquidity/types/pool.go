package types

import "cosmossdk.io/math"

// PoolSnapshot is the immutable (for the duration of one swap) view of pool
// state the orchestrator reads, per spec §3/§6. The caller owns persistence;
// this core only ever reads a snapshot and returns a PostSwapUpdate for the
// caller to apply atomically.
type PoolSnapshot struct {
	TickSpacing int32

	// FeeRate is the pool's static base fee rate, in hundred-thousandths
	// (denominator 100_000). It is converted to millionths (FeeRateDenom)
	// before being handed to the adaptive fee manager - see
	// BaseFeeRateMillionths.
	FeeRate uint16

	// ProtocolFeeRate is in ten-thousandths (denominator
	// fixedpoint.ProtocolFeeDenom).
	ProtocolFeeRate uint16

	Liquidity        math.Int
	SqrtPrice        math.Int
	TickCurrentIndex int32

	FeeGrowthGlobalA math.Int
	FeeGrowthGlobalB math.Int
}

// BaseFeeRateMillionths converts the pool's stored fee rate (hundred
// thousandths) to the millionths scale the adaptive fee manager and
// ComputeSwapStep operate in.
func (p PoolSnapshot) BaseFeeRateMillionths() int64 {
	return int64(p.FeeRate) * 10
}

// RewardInfo tracks one reward token's global growth, mirrored per-tick as
// an "outside" snapshot the same way fee growth is.
type RewardInfo struct {
	GrowthGlobal math.Int
}
