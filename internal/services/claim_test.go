package services

import (
	"context"
	"net/http"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/core"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

func TestProcessClaim(t *testing.T) {
	services, deps := setupTestServices(t)

	payout := types.NewCoins(types.NewInt64Coin(testRewardDenom, 1234))
	deps.db.On("ExecuteClaim", mock.Anything, testAddress, uint64(21), mock.Anything).
		Return(&core.ClaimResult{
			Settlements: []core.BucketSettlement{
				{EpochID: 3, Rewards: payout.Clone()},
			},
			Payout:           payout,
			LastClaimedEpoch: 3,
		}, nil)
	deps.bank.On("Transfer", mock.Anything, testAddress, payout).Return(nil)

	got, err := services.ProcessClaim(context.Background(), testAddress)
	require.Nil(t, err)
	assert.Equal(t, sdkmath.NewInt(1234), got.AmountOf(testRewardDenom))
}

func TestProcessClaimNothingToClaim(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("ExecuteClaim", mock.Anything, testAddress, uint64(21), mock.Anything).
		Return(nil, &db.NotFoundError{Key: testAddress, Message: "no claimable epochs"})

	_, err := services.ProcessClaim(context.Background(), testAddress)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, types.NothingToClaim, err.ErrorCode)
}

func TestProcessClaimZeroPayoutSkipsTransfer(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("ExecuteClaim", mock.Anything, testAddress, uint64(21), mock.Anything).
		Return(&core.ClaimResult{
			Settlements:      []core.BucketSettlement{{EpochID: 3, Rewards: types.Coins{}}},
			Payout:           types.Coins{},
			LastClaimedEpoch: 3,
		}, nil)

	got, err := services.ProcessClaim(context.Background(), testAddress)
	require.Nil(t, err)
	assert.True(t, got.IsZero())
	deps.bank.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessClaimInvariantViolation(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("ExecuteClaim", mock.Anything, testAddress, uint64(21), mock.Anything).
		Return(nil, &db.InvariantViolationError{Message: "invalid share"})

	_, err := services.ProcessClaim(context.Background(), testAddress)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, types.InvalidShare, err.ErrorCode)
}

func TestProcessClaimTransferFailure(t *testing.T) {
	services, deps := setupTestServices(t)

	payout := types.NewCoins(types.NewInt64Coin(testRewardDenom, 10))
	deps.db.On("ExecuteClaim", mock.Anything, testAddress, uint64(21), mock.Anything).
		Return(&core.ClaimResult{Payout: payout, LastClaimedEpoch: 2}, nil)
	deps.bank.On("Transfer", mock.Anything, testAddress, payout).
		Return(types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "bank unreachable"))

	_, err := services.ProcessClaim(context.Background(), testAddress)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}
