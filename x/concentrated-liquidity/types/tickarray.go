package types

import "github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"

// TickArray is a fixed-size shard of TickArraySize consecutive, tick-spacing
// aligned ticks, the unit the caller loads and persists (spec §3/§4.2). The
// zero value of a slot is an uninitialised tick.
type TickArray struct {
	// StartTickIndex is the index of the array's first tick. It must be a
	// multiple of (TickSpacing * TickArraySize).
	StartTickIndex int

	TickSpacing int32

	Ticks [fixedpoint.TickArraySize]Tick
}

// NewTickArray returns an array of TickArraySize uninitialised ticks
// anchored at startTickIndex.
func NewTickArray(startTickIndex int, tickSpacing int32) *TickArray {
	arr := &TickArray{
		StartTickIndex: startTickIndex,
		TickSpacing:    tickSpacing,
	}
	for i := range arr.Ticks {
		arr.Ticks[i] = NewUninitializedTick()
	}
	return arr
}

// EndTickIndex returns the exclusive upper bound of ticks this array covers.
func (a *TickArray) EndTickIndex() int {
	return a.StartTickIndex + fixedpoint.TickArraySize*int(a.TickSpacing)
}

// ContainsTick reports whether tickIndex falls within this array's covered
// range (it need not be spacing-aligned for this check).
func (a *TickArray) ContainsTick(tickIndex int) bool {
	return tickIndex >= a.StartTickIndex && tickIndex < a.EndTickIndex()
}

// OffsetOf returns the slot offset of tickIndex within the array. The caller
// must have already checked ContainsTick and spacing alignment.
func (a *TickArray) OffsetOf(tickIndex int) int {
	return (tickIndex - a.StartTickIndex) / int(a.TickSpacing)
}

// TickAtOffset returns the tick index a given slot offset corresponds to.
func (a *TickArray) TickAtOffset(offset int) int {
	return a.StartTickIndex + offset*int(a.TickSpacing)
}
