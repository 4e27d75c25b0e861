package swapstrategy

import "cosmossdk.io/math"

// AToB is the a->b direction: token A is the input, token B is the output,
// sqrt price moves down. The teacher's pack only retrieved the one-for-zero
// (our BToA) strategy; AToB is built by mirroring it, since the two are the
// same policy with the inequalities and the advance direction reversed.
type AToB struct{}

var _ Strategy = AToB{}

func (AToB) AToB() bool { return true }

// NextTickSearchInclusive: moving down, the tick search must include the
// current tick index itself (spec §4.2) - if we are sitting exactly on an
// initialised tick, crossing it is still pending in this direction.
func (AToB) NextTickSearchInclusive() bool { return true }

// AdvancesArrayAtOffset: moving down, a crossed tick at slot 0 of its array
// means the next tick belongs to the adjacent, numerically lower array.
func (AToB) AdvancesArrayAtOffset(offset int) bool {
	return offset == 0
}

func (AToB) NextArrayDelta() int { return -1 }

// CrossLiquidityDelta: a->b crossing subtracts the tick's liquidity_net.
func (AToB) CrossLiquidityDelta(liquidityNet math.Int) math.Int {
	return liquidityNet.Neg()
}

// ApplyShiftedTick: landing exactly on tick T while moving a->b records
// T-1 as the current tick (spec §3 invariant 6).
func (AToB) ApplyShiftedTick(landedOn int) int {
	return landedOn - 1
}
