package main

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestLoadQuoteFixture_Basic(t *testing.T) {
	fx, err := loadQuoteFixture("testdata/basic_quote.yaml")
	require.NoError(t, err)

	pool, err := fx.toPoolSnapshot()
	require.NoError(t, err)
	require.True(t, pool.Liquidity.Equal(math.NewInt(1_000_000_000_000)))
	require.Equal(t, int32(8), pool.TickSpacing)

	arrays, err := fx.toTickArrays()
	require.NoError(t, err)
	require.Len(t, arrays, 3)

	seq, err := fx.buildSequence(arrays, pool.TickCurrentIndex)
	require.NoError(t, err)
	require.NotNil(t, seq)

	adaptive := fx.toAdaptiveFeeInfo()
	require.NotNil(t, adaptive)
	require.Equal(t, uint16(8), adaptive.Constants.TickGroupSize)
}

func TestLoadQuoteFixture_MissingFileErrors(t *testing.T) {
	_, err := loadQuoteFixture("testdata/does_not_exist.yaml")
	require.Error(t, err)
}

func TestLoadQuoteFixture_RejectsZeroTickSpacing(t *testing.T) {
	_, err := loadQuoteFixtureFromBytes([]byte("pool:\n  tick_spacing: 0\ntick_arrays:\n  - start_tick_index: 0\n    ticks: []\n"))
	require.Error(t, err)
}
