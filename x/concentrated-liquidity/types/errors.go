package types

import "fmt"

// Error kinds are typed structs rather than sentinel errors.New values, the
// convention the teacher's ingest/sqs/router/usecase/errors.go uses for its
// own error taxonomy: each kind carries the fields a caller needs to react
// without string-matching Error().

// SqrtPriceOutOfBoundsError is returned when the adjusted sqrt-price limit
// falls outside [MinSqrtPrice, MaxSqrtPrice].
type SqrtPriceOutOfBoundsError struct {
	SqrtPriceLimit string
	MinSqrtPrice   string
	MaxSqrtPrice   string
}

func (e SqrtPriceOutOfBoundsError) Error() string {
	return fmt.Sprintf("sqrt price limit (%s) out of bounds [%s, %s]", e.SqrtPriceLimit, e.MinSqrtPrice, e.MaxSqrtPrice)
}

// InvalidSqrtPriceLimitDirectionError is returned when the requested
// sqrt-price limit lies on the wrong side of the pool's current sqrt price
// (above it for a->b, below it for b->a). A limit equal to the current sqrt
// price is accepted.
type InvalidSqrtPriceLimitDirectionError struct {
	CurrentSqrtPrice string
	SqrtPriceLimit   string
	AToB             bool
}

func (e InvalidSqrtPriceLimitDirectionError) Error() string {
	return fmt.Sprintf("sqrt price limit (%s) is not valid relative to current sqrt price (%s) for a_to_b=%t",
		e.SqrtPriceLimit, e.CurrentSqrtPrice, e.AToB)
}

// ZeroTradableAmountError is returned when the requested trade amount is
// zero.
type ZeroTradableAmountError struct{}

func (e ZeroTradableAmountError) Error() string {
	return "trade amount must be non-zero"
}

// TickArraySequenceInvalidIndexError is returned when the tick search runs
// off the end of the supplied 1-3 array window without finding a tick, or
// when a tick index is requested outside a given array's range. This is
// intentionally fatal rather than silently clamped (spec §9: "array-window
// overrun is fatal, not silent").
type TickArraySequenceInvalidIndexError struct {
	TickIndex int
	ArrayIdx  int
}

func (e TickArraySequenceInvalidIndexError) Error() string {
	return fmt.Sprintf("tick array sequence has no array covering tick index (%d) at array offset (%d)", e.TickIndex, e.ArrayIdx)
}

// PartialFillError is returned when an exact-out swap with an implicit
// (NO_EXPLICIT_LIMIT) price limit cannot be fully filled.
type PartialFillError struct {
	AmountRemaining string
}

func (e PartialFillError) Error() string {
	return fmt.Sprintf("swap would partially fill with amount remaining (%s) and no explicit sqrt price limit", e.AmountRemaining)
}

// InvalidTimestampError is returned when the supplied "now" precedes the
// last timestamp recorded in the pool's state. The adaptive fee manager
// fills LastRewardUpdateTimeSec with the later of its last reference update
// and last major swap timestamps.
type InvalidTimestampError struct {
	Now                     uint64
	LastRewardUpdateTimeSec uint64
}

func (e InvalidTimestampError) Error() string {
	return fmt.Sprintf("timestamp (%d) precedes last recorded update timestamp (%d)", e.Now, e.LastRewardUpdateTimeSec)
}
