package fixedpoint

import "fmt"

// TickOutOfBoundsError is returned when a tick index falls outside
// [MinTick, MaxTick].
type TickOutOfBoundsError struct {
	Tick int
}

func (e TickOutOfBoundsError) Error() string {
	return fmt.Sprintf("tick index (%d) is out of bounds [%d, %d]", e.Tick, MinTick, MaxTick)
}

// AmountCalcOverflowError is returned when a value checked by CheckU128 or
// CheckI128 falls outside the width its result is committed to.
type AmountCalcOverflowError struct {
	Context string
}

func (e AmountCalcOverflowError) Error() string {
	return fmt.Sprintf("amount calculation overflow: %s", e.Context)
}

// MultiplicationShiftRightOverflowError is returned when a checked
// multiply-then-shift-right used in the fee growth delta (FeeGrowthDelta)
// overflows u128.
type MultiplicationShiftRightOverflowError struct {
	Context string
}

func (e MultiplicationShiftRightOverflowError) Error() string {
	return fmt.Sprintf("multiplication-shift-right overflow: %s", e.Context)
}

// AmountRemainingOverflowError is returned when subtracting a computed
// amount from the remaining trade amount would underflow below zero.
type AmountRemainingOverflowError struct {
	Remaining string
	Delta     string
}

func (e AmountRemainingOverflowError) Error() string {
	return fmt.Sprintf("amount remaining overflow: remaining (%s) cannot absorb delta (%s)", e.Remaining, e.Delta)
}

// LiquidityNetOverflowError is returned when applying a liquidity_net delta
// to active liquidity would overflow or underflow u128.
type LiquidityNetOverflowError struct {
	Liquidity string
	Delta     string
}

func (e LiquidityNetOverflowError) Error() string {
	return fmt.Sprintf("liquidity delta overflow: liquidity (%s) delta (%s)", e.Liquidity, e.Delta)
}
