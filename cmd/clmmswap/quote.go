package main

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"cosmossdk.io/math"

	concentratedliquidity "github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity"
	"github.com/osmosis-labs/adaptive-clmm/x/concentrated-liquidity/types"
)

// runQuote loads a pool/tick-array/adaptive-fee fixture from fixturePath and
// prints the PostSwapUpdate for the one-off swap request it describes. It is
// a demo harness, not a service: every run is a single deterministic call
// into the swap core and a print, mirroring the teacher's own pattern of
// small CLI entry points next to keeper logic.
func runQuote(fixturePath string, verbose bool) error {
	fx, err := loadQuoteFixture(fixturePath)
	if err != nil {
		return err
	}

	pool, err := fx.toPoolSnapshot()
	if err != nil {
		return err
	}
	arrays, err := fx.toTickArrays()
	if err != nil {
		return err
	}
	seq, err := fx.buildSequence(arrays, pool.TickCurrentIndex)
	if err != nil {
		return fmt.Errorf("building tick array sequence: %w", err)
	}

	amount, err := parseIntOrDefault(fx.Swap.Amount, math.ZeroInt())
	if err != nil {
		return fmt.Errorf("swap.amount: %w", err)
	}
	sqrtPriceLimit, err := parseIntOrDefault(fx.Swap.SqrtPriceLimit, math.ZeroInt())
	if err != nil {
		return fmt.Errorf("swap.sqrt_price_limit: %w", err)
	}

	var logger log.Logger = log.NewNopLogger()
	if verbose {
		logger = log.NewLogger(os.Stdout)
	}

	upd, err := concentratedliquidity.Swap(
		pool,
		seq,
		amount,
		sqrtPriceLimit,
		fx.Swap.ExactIn,
		fx.Swap.AToB,
		fx.Swap.Now,
		fx.toAdaptiveFeeInfo(),
		logger,
	)
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}

	printPostSwapUpdate(upd)
	return nil
}

func printPostSwapUpdate(upd types.PostSwapUpdate) {
	fmt.Printf("amount_a:              %s\n", upd.AmountA.String())
	fmt.Printf("amount_b:              %s\n", upd.AmountB.String())
	fmt.Printf("next_liquidity:        %s\n", upd.NextLiquidity.String())
	fmt.Printf("next_tick_index:       %d\n", upd.NextTickIndex)
	fmt.Printf("next_sqrt_price:       %s\n", upd.NextSqrtPrice.String())
	fmt.Printf("next_fee_growth_global: %s\n", upd.NextFeeGrowthGlobal.String())
	fmt.Printf("next_protocol_fee:     %s\n", upd.NextProtocolFee.String())
	if upd.NextAdaptiveFeeInfo != nil {
		v := upd.NextAdaptiveFeeInfo.Variables
		fmt.Printf("adaptive_fee.volatility_accumulator: %d\n", v.VolatilityAccumulator)
		fmt.Printf("adaptive_fee.volatility_reference:   %d\n", v.VolatilityReference)
		fmt.Printf("adaptive_fee.tick_group_index_reference: %d\n", v.TickGroupIndexReference)
	}
}
