package swapstrategy

import "cosmossdk.io/math"

// BToA is the b->a direction: token B is the input, token A is the output,
// sqrt price moves up. Grounded on the teacher's oneForZeroStrategy (token1
// in, token0 out, "moves to the right of the current tick index").
type BToA struct{}

var _ Strategy = BToA{}

func (BToA) AToB() bool { return false }

// NextTickSearchInclusive: moving up, the current tick is already behind us
// (the active range invariant is lower <= current < upper), so the search
// for the next initialised tick excludes it - mirrors
// InitializeNextTickIterator's exclusive forward scan in one_for_zero.go.
func (BToA) NextTickSearchInclusive() bool { return false }

// AdvancesArrayAtOffset: moving up, a crossed tick sitting at the last slot
// of its array means the next tick belongs to the adjacent, numerically
// higher array.
func (BToA) AdvancesArrayAtOffset(offset int) bool {
	return offset == TickArrayLastOffset
}

func (BToA) NextArrayDelta() int { return 1 }

// CrossLiquidityDelta: b->a crossing adds the tick's liquidity_net (spec
// §4.3).
func (BToA) CrossLiquidityDelta(liquidityNet math.Int) math.Int {
	return liquidityNet
}

// ApplyShiftedTick: b->a is the identity - the shifted-tick convention only
// applies to a->b (spec §3 invariant 6, §4.3).
func (BToA) ApplyShiftedTick(landedOn int) int {
	return landedOn
}
