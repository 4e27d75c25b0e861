package swapstrategy

import (
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/types"
)

// Sequence is a caller-supplied window of 1-3 adjacent tick arrays (spec
// §3/§4.2). Arrays must be ordered by ascending StartTickIndex and
// contiguous at the given tick spacing; the caller owns loading them and
// persisting mutations made via UpdateTick.
type Sequence struct {
	arrays      []*types.TickArray
	tickSpacing int32
	strategy    Strategy

	// activeIdx is the index into arrays currently considered "current" for
	// array-advance bookkeeping (§4.2 policy).
	activeIdx int
}

// NewSequence builds a Sequence over arrays (ascending StartTickIndex),
// starting active at whichever array contains currentTickIndex.
func NewSequence(arrays []*types.TickArray, tickSpacing int32, strategy Strategy, currentTickIndex int) (*Sequence, error) {
	s := &Sequence{arrays: arrays, tickSpacing: tickSpacing, strategy: strategy}
	for i, a := range arrays {
		if a.ContainsTick(currentTickIndex) {
			s.activeIdx = i
			return s, nil
		}
	}
	return nil, types.TickArraySequenceInvalidIndexError{TickIndex: currentTickIndex, ArrayIdx: -1}
}

// GetNextInitializedTickIndex searches the sequence for the next
// initialised tick relative to currentTickIndex, honoring the strategy's
// search inclusivity. Returns the array index (within the sequence), the
// tick index found, and whether that tick is a real initialised tick or the
// synthetic MIN_TICK/MAX_TICK boundary (see below).
//
// If the supplied array window is exhausted without finding an initialised
// tick, MIN_TICK (a->b) or MAX_TICK (b->a) acts as an implicit terminal
// boundary when the window's edge already reaches it - this is not the
// "array-window overrun" the design notes call out as fatal, since nothing
// beyond the global tick bound could ever be reached anyway. If the window
// ends short of the global bound, the search is a genuine, fatal overrun.
func (s *Sequence) GetNextInitializedTickIndex(currentTickIndex int) (int, int, bool, error) {
	arrIdx := s.activeIdx

	for arrIdx >= 0 && arrIdx < len(s.arrays) {
		arr := s.arrays[arrIdx]

		size := len(arr.Ticks)
		start := 0
		if arr.ContainsTick(currentTickIndex) {
			start = arr.OffsetOf(currentTickIndex)
			if !s.strategy.NextTickSearchInclusive() {
				start++
			}
		} else if currentTickIndex < arr.StartTickIndex {
			start = 0
		} else {
			start = size
		}

		if s.strategy.AToB() {
			top := start
			if top > size-1 {
				top = size - 1
			}
			for off := top; off >= 0; off-- {
				if arr.Ticks[off].Initialized {
					return arrIdx, arr.TickAtOffset(off), false, nil
				}
			}
			arrIdx--
		} else {
			for off := start; off < size; off++ {
				if arr.Ticks[off].Initialized {
					return arrIdx, arr.TickAtOffset(off), false, nil
				}
			}
			arrIdx++
		}
	}

	if s.strategy.AToB() {
		if len(s.arrays) > 0 && s.arrays[0].StartTickIndex <= fixedpoint.MinTick {
			return 0, fixedpoint.MinTick, true, nil
		}
	} else {
		if n := len(s.arrays); n > 0 && s.arrays[n-1].EndTickIndex()-1 >= fixedpoint.MaxTick {
			return n - 1, fixedpoint.MaxTick, true, nil
		}
	}

	return 0, 0, false, types.TickArraySequenceInvalidIndexError{TickIndex: currentTickIndex, ArrayIdx: arrIdx}
}

// GetTick returns a copy of the tick at tickIndex within array arrIdx.
func (s *Sequence) GetTick(arrIdx int, tickIndex int) (types.Tick, error) {
	if arrIdx < 0 || arrIdx >= len(s.arrays) {
		return types.Tick{}, types.TickArraySequenceInvalidIndexError{TickIndex: tickIndex, ArrayIdx: arrIdx}
	}
	arr := s.arrays[arrIdx]
	if !arr.ContainsTick(tickIndex) {
		return types.Tick{}, types.TickArraySequenceInvalidIndexError{TickIndex: tickIndex, ArrayIdx: arrIdx}
	}
	return arr.Ticks[arr.OffsetOf(tickIndex)], nil
}

// UpdateTick applies upd to the tick at tickIndex within array arrIdx.
func (s *Sequence) UpdateTick(arrIdx int, tickIndex int, upd types.TickUpdate) error {
	if arrIdx < 0 || arrIdx >= len(s.arrays) {
		return types.TickArraySequenceInvalidIndexError{TickIndex: tickIndex, ArrayIdx: arrIdx}
	}
	arr := s.arrays[arrIdx]
	if !arr.ContainsTick(tickIndex) {
		return types.TickArraySequenceInvalidIndexError{TickIndex: tickIndex, ArrayIdx: arrIdx}
	}
	off := arr.OffsetOf(tickIndex)
	t := arr.Ticks[off]
	t.FeeGrowthOutsideA = upd.FeeGrowthOutsideA
	t.FeeGrowthOutsideB = upd.FeeGrowthOutsideB
	t.RewardGrowthsOutside = upd.RewardGrowthsOutside
	arr.Ticks[off] = t
	return nil
}

// GetTickOffset returns the slot offset of tickIndex within array arrIdx.
func (s *Sequence) GetTickOffset(arrIdx int, tickIndex int) (int, error) {
	if arrIdx < 0 || arrIdx >= len(s.arrays) {
		return 0, types.TickArraySequenceInvalidIndexError{TickIndex: tickIndex, ArrayIdx: arrIdx}
	}
	arr := s.arrays[arrIdx]
	if !arr.ContainsTick(tickIndex) {
		return 0, types.TickArraySequenceInvalidIndexError{TickIndex: tickIndex, ArrayIdx: arrIdx}
	}
	return arr.OffsetOf(tickIndex), nil
}

// AdvanceArrayIfNeeded applies the §4.2 array-pointer-advance policy after a
// boundary tick at (arrIdx, tickIndex) has been crossed.
func (s *Sequence) AdvanceArrayIfNeeded(arrIdx int, tickIndex int) error {
	offset, err := s.GetTickOffset(arrIdx, tickIndex)
	if err != nil {
		return err
	}
	if s.strategy.AdvancesArrayAtOffset(offset) {
		s.activeIdx = arrIdx + s.strategy.NextArrayDelta()
	} else {
		s.activeIdx = arrIdx
	}
	return nil
}
