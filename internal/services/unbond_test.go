package services

import (
	"context"
	"net/http"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

func TestProcessUnbond(t *testing.T) {
	services, deps := setupTestServices(t)

	expectNothingClaimable(deps)
	deps.epochManager.On("CurrentEpoch", mock.Anything).Return(&types.Epoch{ID: 5, StartTime: 900_000}, nil)

	// 24h unbonding period on top of the frozen clock
	expectedUnbondedAt := int64(1_000_000 + 86400)
	deps.db.On(
		"SaveUnbonding", mock.Anything, testAddress, testBondDenom,
		sdkmath.NewInt(300), mock.Anything, int64(1_000_000), expectedUnbondedAt, uint64(5),
	).Return(&model.UnbondingDocument{
		Address:    testAddress,
		Denom:      testBondDenom,
		Amount:     "300",
		Sequence:   7,
		UnbondedAt: expectedUnbondedAt,
		CreatedAt:  1_000_000,
	}, nil)

	unbonding, err := services.ProcessUnbond(context.Background(), testAddress, types.NewInt64Coin(testBondDenom, 300))
	require.Nil(t, err)
	assert.Equal(t, "300", unbonding.Amount)
	assert.Equal(t, uint64(7), unbonding.Sequence)
	assert.Equal(t, expectedUnbondedAt, unbonding.UnbondedAt)
}

func TestProcessUnbondRejectsZeroAmount(t *testing.T) {
	services, _ := setupTestServices(t)

	_, err := services.ProcessUnbond(context.Background(), testAddress, types.NewInt64Coin(testBondDenom, 0))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.InvalidUnbondingAmount, err.ErrorCode)
}

func TestProcessUnbondWithoutBondedPosition(t *testing.T) {
	services, deps := setupTestServices(t)

	expectNothingClaimable(deps)
	deps.epochManager.On("CurrentEpoch", mock.Anything).Return(&types.Epoch{ID: 5}, nil)
	deps.db.On(
		"SaveUnbonding", mock.Anything, testAddress, testBondDenom,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(nil, &db.NotFoundError{Key: testAddress, Message: "bond not found"})

	_, err := services.ProcessUnbond(context.Background(), testAddress, types.NewInt64Coin(testBondDenom, 300))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, types.NothingToUnbond, err.ErrorCode)
}

func TestProcessUnbondExceedingBondedAmount(t *testing.T) {
	services, deps := setupTestServices(t)

	expectNothingClaimable(deps)
	deps.epochManager.On("CurrentEpoch", mock.Anything).Return(&types.Epoch{ID: 5}, nil)
	deps.db.On(
		"SaveUnbonding", mock.Anything, testAddress, testBondDenom,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(nil, &db.InsufficientBondError{Key: testAddress, Message: "unbonding 500 exceeds bonded 300"})

	_, err := services.ProcessUnbond(context.Background(), testAddress, types.NewInt64Coin(testBondDenom, 500))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.InsufficientBond, err.ErrorCode)
}

func TestProcessUnbondBeforeFirstEpoch(t *testing.T) {
	services, deps := setupTestServices(t)

	expectNothingClaimable(deps)
	deps.epochManager.On("CurrentEpoch", mock.Anything).
		Return(nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "no epoch yet"))

	_, err := services.ProcessUnbond(context.Background(), testAddress, types.NewInt64Coin(testBondDenom, 300))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, types.NothingToUnbond, err.ErrorCode)
}

func TestProcessUnbondRequiresClaimingPendingRewards(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindRewardBuckets", mock.Anything).Return([]model.RewardBucketDocument{
		rewardBucketDoc(3, "1000"),
		rewardBucketDoc(2, "1000"),
	}, nil)
	deps.db.On("FindLastClaimedEpoch", mock.Anything, testAddress).
		Return(nil, &db.NotFoundError{Key: testAddress, Message: "never claimed"})
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).Return([]model.BondDocument{
		{
			Address:        testAddress,
			Denom:          testBondDenom,
			Amount:         "1500",
			Weight:         "200000",
			LastUpdated:    200,
			CreatedAtEpoch: 1,
		},
	}, nil)

	_, err := services.ProcessUnbond(context.Background(), testAddress, types.NewInt64Coin(testBondDenom, 300))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.UnclaimedRewards, err.ErrorCode)
	deps.db.AssertNotCalled(
		t, "SaveUnbonding", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	)
}

func TestUnbondingsByAddress(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindUnbondings", mock.Anything, testAddress, testBondDenom, "", int64(10)).
		Return(&db.DbResultMap[model.UnbondingDocument]{
			Data: []model.UnbondingDocument{
				{Denom: testBondDenom, Amount: "100", Sequence: 1, UnbondedAt: 500, CreatedAt: 400},
				{Denom: testBondDenom, Amount: "200", Sequence: 2, UnbondedAt: 600, CreatedAt: 500},
			},
			PaginationToken: "next-page",
		}, nil)
	deps.db.On("FindAllUnbondings", mock.Anything, testAddress, testBondDenom).
		Return([]model.UnbondingDocument{
			{Amount: "100"}, {Amount: "200"}, {Amount: "300"},
		}, nil)

	unbondings, total, token, err := services.UnbondingsByAddress(context.Background(), testAddress, testBondDenom, "", 10)
	require.Nil(t, err)
	require.Len(t, unbondings, 2)
	assert.Equal(t, uint64(1), unbondings[0].Sequence)
	assert.Equal(t, "600", total)
	assert.Equal(t, "next-page", token)
}

func TestUnbondingsByAddressInvalidPaginationToken(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindUnbondings", mock.Anything, testAddress, testBondDenom, "garbage", int64(10)).
		Return(nil, &db.InvalidPaginationTokenError{Message: "invalid token"})

	_, _, _, err := services.UnbondingsByAddress(context.Background(), testAddress, testBondDenom, "garbage", 10)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.BadRequest, err.ErrorCode)
}
