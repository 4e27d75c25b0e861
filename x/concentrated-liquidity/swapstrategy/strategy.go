// Package swapstrategy isolates the handful of places the swap orchestrator's
// behaviour depends on trade direction: which side of the current tick the
// next-initialised-tick search includes, when the tick-array sequence's
// pointer advances to an adjacent shard, and the sign applied to a crossed
// tick's liquidity_net. Everything direction-agnostic (the per-step fixed
// point math) lives in fixedpoint instead.
package swapstrategy

import (
	"cosmossdk.io/math"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
)

// TickArrayLastOffset is the final valid slot offset within one tick array.
const TickArrayLastOffset = fixedpoint.TickArraySize - 1

// Strategy captures the direction-dependent policy of §4.2/§4.3. There are
// exactly two implementations, AToB and BToA, selected once per swap and
// held for its duration.
type Strategy interface {
	// AToB reports the trade direction this strategy implements.
	AToB() bool

	// NextTickSearchInclusive reports whether the current tick index is
	// itself a candidate when searching for the next initialised tick.
	// a->b search is inclusive of the current tick; b->a is exclusive.
	NextTickSearchInclusive() bool

	// AdvancesArrayAtOffset reports whether, having just crossed a tick at
	// the given offset within its array, the sequence's active-array
	// pointer should move to the adjacent array.
	AdvancesArrayAtOffset(offset int) bool

	// NextArrayDelta is the signed step (+1 or -1) applied to the active
	// array index when AdvancesArrayAtOffset is true.
	NextArrayDelta() int

	// CrossLiquidityDelta returns the signed liquidity delta to apply to
	// the pool's active liquidity when crossing a tick whose stored
	// liquidity_net is liquidityNet. a->b subtracts; b->a adds.
	CrossLiquidityDelta(liquidityNet math.Int) math.Int

	// ApplyShiftedTick adjusts the tick index recorded as current
	// immediately after price lands exactly on tick `landedOn`. Only a->b
	// shifts (to landedOn-1); b->a is the identity.
	ApplyShiftedTick(landedOn int) int
}

// New selects the AToB or BToA strategy.
func New(aToB bool) Strategy {
	if aToB {
		return AToB{}
	}
	return BToA{}
}
