package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/clients/amm"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

func TestProcessFillRewardsRewardDenomPassThrough(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("AddToUpcomingBucket", mock.Anything,
		types.NewCoins(types.NewInt64Coin(testRewardDenom, 500))).Return(nil)

	err := services.ProcessFillRewards(context.Background(),
		types.NewCoins(types.NewInt64Coin(testRewardDenom, 500)))
	assert.Nil(t, err)
	deps.amm.AssertNotCalled(t, "SwapRoute", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessFillRewardsSwapsForeignDenoms(t *testing.T) {
	services, deps := setupTestServices(t)

	offer := types.NewInt64Coin("uusdc", 100)
	received := types.NewInt64Coin(testRewardDenom, 80)

	deps.amm.On("SwapRoute", mock.Anything, "uusdc", testRewardDenom).
		Return(&amm.SwapRoute{OfferDenom: "uusdc", AskDenom: testRewardDenom, PoolIDs: []string{"pool-3"}}, nil)
	deps.amm.On("ExecuteSwap", mock.Anything, offer, testRewardDenom).Return(&received, nil)
	deps.db.On("AddToUpcomingBucket", mock.Anything,
		types.NewCoins(types.NewInt64Coin(testRewardDenom, 580))).Return(nil)

	err := services.ProcessFillRewards(context.Background(), types.NewCoins(
		offer,
		types.NewInt64Coin(testRewardDenom, 500),
	))
	assert.Nil(t, err)
}

func TestProcessFillRewardsMissingSwapRoute(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.amm.On("SwapRoute", mock.Anything, "uusdc", testRewardDenom).
		Return(nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "no route"))

	err := services.ProcessFillRewards(context.Background(),
		types.NewCoins(types.NewInt64Coin("uusdc", 100)))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	deps.db.AssertNotCalled(t, "AddToUpcomingBucket", mock.Anything, mock.Anything)
}

func TestProcessFillRewardsEmptyInputIsNoOp(t *testing.T) {
	services, deps := setupTestServices(t)

	err := services.ProcessFillRewards(context.Background(), types.Coins{})
	assert.Nil(t, err)
	deps.db.AssertNotCalled(t, "AddToUpcomingBucket", mock.Anything, mock.Anything)
}
