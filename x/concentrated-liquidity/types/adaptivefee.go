package types

// AdaptiveFeeConstants are the immutable per-pool parameters of the
// volatility-driven fee mechanism (spec §3).
type AdaptiveFeeConstants struct {
	// FilterPeriod and DecayPeriod are in seconds; DecayPeriod > FilterPeriod.
	FilterPeriod uint16
	DecayPeriod  uint16

	// ReductionFactor is /10000.
	ReductionFactor uint16

	// AdaptiveFeeControlFactor is /100000 (fixedpoint.ControlDenom).
	AdaptiveFeeControlFactor uint32

	MaxVolatilityAccumulator uint32

	// TickGroupSize must be <= the pool's tick spacing.
	TickGroupSize uint16

	MajorSwapThresholdTicks uint16
}

// AdaptiveFeeVariables is the mutable state carried between swaps.
type AdaptiveFeeVariables struct {
	LastReferenceUpdateTimestamp uint64
	LastMajorSwapTimestamp       uint64

	TickGroupIndexReference int32
	VolatilityReference     uint32
	VolatilityAccumulator   uint32
}

// AdaptiveFeeInfo bundles the constants and variables a caller threads
// through a swap. A nil *AdaptiveFeeInfo disables the mechanism entirely;
// Swap then runs with the pool's static base fee rate only.
type AdaptiveFeeInfo struct {
	Constants AdaptiveFeeConstants
	Variables AdaptiveFeeVariables
}
