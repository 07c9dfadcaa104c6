package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoinsNormalizes(t *testing.T) {
	coins := NewCoins(
		NewInt64Coin("uwhale", 100),
		NewInt64Coin("ampwhale", 50),
		NewInt64Coin("uwhale", 25),
		NewCoin("uusdc", sdkmath.ZeroInt()),
	)

	require.Len(t, coins, 2)
	assert.Equal(t, "ampwhale", coins[0].Denom)
	assert.Equal(t, "uwhale", coins[1].Denom)
	assert.Equal(t, sdkmath.NewInt(125), coins.AmountOf("uwhale"))
	assert.Equal(t, sdkmath.NewInt(50), coins.AmountOf("ampwhale"))
}

func TestAmountOfMissingDenom(t *testing.T) {
	coins := NewCoins(NewInt64Coin("uwhale", 100))
	assert.True(t, coins.AmountOf("uusdc").IsZero())
}

func TestAggregateKeepsSortedOrder(t *testing.T) {
	coins := NewCoins(NewInt64Coin("uwhale", 1))
	coins = coins.Aggregate(NewInt64Coin("ampwhale", 1))
	coins = coins.Aggregate(NewInt64Coin("uusdc", 1))

	require.Len(t, coins, 3)
	assert.Equal(t, "ampwhale", coins[0].Denom)
	assert.Equal(t, "uusdc", coins[1].Denom)
	assert.Equal(t, "uwhale", coins[2].Denom)
}

func TestAggregateIgnoresZero(t *testing.T) {
	coins := NewCoins(NewInt64Coin("uwhale", 100))
	coins = coins.Aggregate(NewCoin("uusdc", sdkmath.ZeroInt()))
	require.Len(t, coins, 1)
}

func TestSubtract(t *testing.T) {
	coins := NewCoins(NewInt64Coin("uwhale", 100), NewInt64Coin("ampwhale", 50))

	remaining, err := coins.Subtract(NewInt64Coin("uwhale", 40))
	require.NoError(t, err)
	assert.Equal(t, sdkmath.NewInt(60), remaining.AmountOf("uwhale"))
	assert.Equal(t, sdkmath.NewInt(50), remaining.AmountOf("ampwhale"))

	// subtracting the full amount prunes the entry
	remaining, err = remaining.Subtract(NewInt64Coin("uwhale", 60))
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "ampwhale", remaining[0].Denom)
}

func TestSubtractInsufficient(t *testing.T) {
	coins := NewCoins(NewInt64Coin("uwhale", 10))

	_, err := coins.Subtract(NewInt64Coin("uwhale", 11))
	assert.Error(t, err)

	_, err = coins.Subtract(NewInt64Coin("uusdc", 1))
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	coins := NewCoins(NewInt64Coin("uwhale", 100))
	clone := coins.Clone()

	clone[0].Amount = sdkmath.NewInt(999)
	assert.Equal(t, sdkmath.NewInt(100), coins.AmountOf("uwhale"))
}

func TestCoinsIsZero(t *testing.T) {
	assert.True(t, Coins{}.IsZero())
	assert.True(t, Coins{NewCoin("uwhale", sdkmath.ZeroInt())}.IsZero())
	assert.False(t, NewCoins(NewInt64Coin("uwhale", 1)).IsZero())
}

func TestCoinsString(t *testing.T) {
	assert.Equal(t, "", Coins{}.String())
	coins := NewCoins(NewInt64Coin("uwhale", 100), NewInt64Coin("ampwhale", 50))
	assert.Equal(t, "50ampwhale,100uwhale", coins.String())
}
