package services

import (
	"context"
	"net/http"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

func TestProcessWithdraw(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("WithdrawMaturedUnbondings", mock.Anything, testAddress, testBondDenom, int64(1_000_000)).
		Return(sdkmath.NewInt(750), nil)
	deps.bank.On("Transfer", mock.Anything, testAddress,
		types.NewCoins(types.NewInt64Coin(testBondDenom, 750))).Return(nil)

	withdrawn, err := services.ProcessWithdraw(context.Background(), testAddress, testBondDenom)
	require.Nil(t, err)
	assert.Equal(t, sdkmath.NewInt(750), withdrawn.Amount)
	assert.Equal(t, testBondDenom, withdrawn.Denom)
}

func TestProcessWithdrawNothingMatured(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("WithdrawMaturedUnbondings", mock.Anything, testAddress, testBondDenom, int64(1_000_000)).
		Return(sdkmath.ZeroInt(), nil)

	withdrawn, err := services.ProcessWithdraw(context.Background(), testAddress, testBondDenom)
	require.Nil(t, err)
	assert.True(t, withdrawn.Amount.IsZero())
	// no transfer happens for a zero withdrawal
	deps.bank.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessWithdrawTransferFailure(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("WithdrawMaturedUnbondings", mock.Anything, testAddress, testBondDenom, int64(1_000_000)).
		Return(sdkmath.NewInt(750), nil)
	deps.bank.On("Transfer", mock.Anything, testAddress, mock.Anything).
		Return(types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "bank unreachable"))

	_, err := services.ProcessWithdraw(context.Background(), testAddress, testBondDenom)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestWithdrawableAmountSumsOnlyMatured(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindAllUnbondings", mock.Anything, testAddress, testBondDenom).
		Return([]model.UnbondingDocument{
			{Amount: "100", UnbondedAt: 999_999},
			{Amount: "200", UnbondedAt: 1_000_000},
			{Amount: "400", UnbondedAt: 1_000_001},
		}, nil)

	coin, err := services.WithdrawableAmount(context.Background(), testAddress, testBondDenom)
	require.Nil(t, err)
	assert.Equal(t, sdkmath.NewInt(300), coin.Amount)
}

func TestWithdrawableAmountNoEntries(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindAllUnbondings", mock.Anything, testAddress, testBondDenom).
		Return([]model.UnbondingDocument{}, nil)

	coin, err := services.WithdrawableAmount(context.Background(), testAddress, testBondDenom)
	require.Nil(t, err)
	assert.True(t, coin.Amount.IsZero())
}
