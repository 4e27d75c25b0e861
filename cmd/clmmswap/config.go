package main

import (
	"fmt"
	"os"

	"cosmossdk.io/math"
	"gopkg.in/yaml.v3"

	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/fixedpoint"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/swapstrategy"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/types"
)

// poolConfig is the YAML shape of a pool snapshot fixture (spec §3/§6).
type poolConfig struct {
	TickSpacing      int32  `yaml:"tick_spacing"`
	FeeRate          uint16 `yaml:"fee_rate"`
	ProtocolFeeRate  uint16 `yaml:"protocol_fee_rate"`
	Liquidity        string `yaml:"liquidity"`
	TickCurrentIndex int32  `yaml:"tick_current_index"`
	FeeGrowthGlobalA string `yaml:"fee_growth_global_a"`
	FeeGrowthGlobalB string `yaml:"fee_growth_global_b"`
}

// tickEntryConfig initialises a single tick within a tickArrayConfig.
type tickEntryConfig struct {
	TickIndex    int32  `yaml:"tick_index"`
	LiquidityNet string `yaml:"liquidity_net"`
}

// tickArrayConfig is one shard of the caller-supplied tick-array window
// (spec §4.2); StartTickIndex must line up with TickSpacing the same way
// types.NewTickArray expects.
type tickArrayConfig struct {
	StartTickIndex int32             `yaml:"start_tick_index"`
	Ticks          []tickEntryConfig `yaml:"ticks"`
}

// adaptiveFeeConfig is optional; a nil *adaptiveFeeConfig in the fixture
// disables the adaptive fee manager for the quote, matching how Swap treats
// a nil *types.AdaptiveFeeInfo.
type adaptiveFeeConfig struct {
	FilterPeriod             uint16 `yaml:"filter_period"`
	DecayPeriod              uint16 `yaml:"decay_period"`
	ReductionFactor          uint16 `yaml:"reduction_factor"`
	AdaptiveFeeControlFactor uint32 `yaml:"adaptive_fee_control_factor"`
	MaxVolatilityAccumulator uint32 `yaml:"max_volatility_accumulator"`
	TickGroupSize            uint16 `yaml:"tick_group_size"`
	MajorSwapThresholdTicks  uint16 `yaml:"major_swap_threshold_ticks"`

	LastReferenceUpdateTimestamp uint64 `yaml:"last_reference_update_timestamp"`
	LastMajorSwapTimestamp       uint64 `yaml:"last_major_swap_timestamp"`
	TickGroupIndexReference      int32  `yaml:"tick_group_index_reference"`
	VolatilityReference          uint32 `yaml:"volatility_reference"`
	VolatilityAccumulator        uint32 `yaml:"volatility_accumulator"`
}

// swapRequestConfig is the one-off trade the quote command evaluates.
type swapRequestConfig struct {
	Amount         string `yaml:"amount"`
	SqrtPriceLimit string `yaml:"sqrt_price_limit"`
	ExactIn        bool   `yaml:"exact_in"`
	AToB           bool   `yaml:"a_to_b"`
	Now            uint64 `yaml:"now"`
}

// quoteFixture is the top-level YAML document cmd/clmmswap/quote loads.
type quoteFixture struct {
	Pool        poolConfig         `yaml:"pool"`
	TickArrays  []tickArrayConfig  `yaml:"tick_arrays"`
	AdaptiveFee *adaptiveFeeConfig `yaml:"adaptive_fee"`
	Swap        swapRequestConfig  `yaml:"swap"`
}

// loadQuoteFixture reads and validates a YAML fixture from path, the way
// the teacher's modules validate params at load time rather than deferring
// to first use.
func loadQuoteFixture(path string) (*quoteFixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return loadQuoteFixtureFromBytes(raw)
}

func loadQuoteFixtureFromBytes(raw []byte) (*quoteFixture, error) {
	var fx quoteFixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	if fx.Pool.TickSpacing <= 0 {
		return nil, fmt.Errorf("pool.tick_spacing must be positive")
	}
	if len(fx.TickArrays) == 0 {
		return nil, fmt.Errorf("at least one tick array is required")
	}

	return &fx, nil
}

func parseIntOrDefault(s string, def math.Int) (math.Int, error) {
	if s == "" {
		return def, nil
	}
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

// toPoolSnapshot converts the fixture's pool section into the domain type
// Swap consumes.
func (fx *quoteFixture) toPoolSnapshot() (types.PoolSnapshot, error) {
	liquidity, err := parseIntOrDefault(fx.Pool.Liquidity, math.ZeroInt())
	if err != nil {
		return types.PoolSnapshot{}, fmt.Errorf("pool.liquidity: %w", err)
	}
	feeGrowthA, err := parseIntOrDefault(fx.Pool.FeeGrowthGlobalA, math.ZeroInt())
	if err != nil {
		return types.PoolSnapshot{}, fmt.Errorf("pool.fee_growth_global_a: %w", err)
	}
	feeGrowthB, err := parseIntOrDefault(fx.Pool.FeeGrowthGlobalB, math.ZeroInt())
	if err != nil {
		return types.PoolSnapshot{}, fmt.Errorf("pool.fee_growth_global_b: %w", err)
	}

	return types.PoolSnapshot{
		TickSpacing:      fx.Pool.TickSpacing,
		FeeRate:          fx.Pool.FeeRate,
		ProtocolFeeRate:  fx.Pool.ProtocolFeeRate,
		Liquidity:        liquidity,
		SqrtPrice:        fixedpoint.SqrtPriceFromTick(int(fx.Pool.TickCurrentIndex)),
		TickCurrentIndex: fx.Pool.TickCurrentIndex,
		FeeGrowthGlobalA: feeGrowthA,
		FeeGrowthGlobalB: feeGrowthB,
	}, nil
}

// toTickArrays materialises the fixture's tick arrays, applying each listed
// tick's liquidity_net on top of an otherwise-uninitialised shard.
func (fx *quoteFixture) toTickArrays() ([]*types.TickArray, error) {
	arrays := make([]*types.TickArray, 0, len(fx.TickArrays))
	for _, a := range fx.TickArrays {
		arr := types.NewTickArray(int(a.StartTickIndex), fx.Pool.TickSpacing)
		for _, te := range a.Ticks {
			net, err := parseIntOrDefault(te.LiquidityNet, math.ZeroInt())
			if err != nil {
				return nil, fmt.Errorf("tick_arrays[].ticks[].liquidity_net: %w", err)
			}
			if !arr.ContainsTick(int(te.TickIndex)) {
				return nil, fmt.Errorf("tick index %d is not contained in array starting at %d", te.TickIndex, a.StartTickIndex)
			}
			off := arr.OffsetOf(int(te.TickIndex))
			t := arr.Ticks[off]
			t.Initialized = true
			t.LiquidityNet = net
			t.LiquidityGross = net.Abs()
			t.FeeGrowthOutsideA = math.ZeroInt()
			t.FeeGrowthOutsideB = math.ZeroInt()
			arr.Ticks[off] = t
		}
		arrays = append(arrays, arr)
	}
	return arrays, nil
}

// toAdaptiveFeeInfo converts the optional adaptive-fee fixture section; a
// nil section means the quote runs with adaptive fees disabled.
func (fx *quoteFixture) toAdaptiveFeeInfo() *types.AdaptiveFeeInfo {
	if fx.AdaptiveFee == nil {
		return nil
	}
	c := fx.AdaptiveFee
	return &types.AdaptiveFeeInfo{
		Constants: types.AdaptiveFeeConstants{
			FilterPeriod:             c.FilterPeriod,
			DecayPeriod:              c.DecayPeriod,
			ReductionFactor:          c.ReductionFactor,
			AdaptiveFeeControlFactor: c.AdaptiveFeeControlFactor,
			MaxVolatilityAccumulator: c.MaxVolatilityAccumulator,
			TickGroupSize:            c.TickGroupSize,
			MajorSwapThresholdTicks:  c.MajorSwapThresholdTicks,
		},
		Variables: types.AdaptiveFeeVariables{
			LastReferenceUpdateTimestamp: c.LastReferenceUpdateTimestamp,
			LastMajorSwapTimestamp:       c.LastMajorSwapTimestamp,
			TickGroupIndexReference:      c.TickGroupIndexReference,
			VolatilityReference:          c.VolatilityReference,
			VolatilityAccumulator:        c.VolatilityAccumulator,
		},
	}
}

// buildSequence constructs the swapstrategy.Sequence the swap request walks,
// choosing the strategy from swap.a_to_b.
func (fx *quoteFixture) buildSequence(arrays []*types.TickArray, currentTick int32) (*swapstrategy.Sequence, error) {
	strategy := swapstrategy.New(fx.Swap.AToB)
	return swapstrategy.NewSequence(arrays, fx.Pool.TickSpacing, strategy, int(currentTick))
}
