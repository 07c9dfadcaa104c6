package services

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
)

func TestBondedByAddress(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).Return([]model.BondDocument{
		{Address: testAddress, Denom: "ampwhale", Amount: "1000", Weight: "0", CreatedAtEpoch: 3},
		{Address: testAddress, Denom: "bwhale", Amount: "500", Weight: "0", CreatedAtEpoch: 2},
	}, nil)

	bonded, err := services.BondedByAddress(context.Background(), testAddress)
	require.Nil(t, err)
	assert.Equal(t, sdkmath.NewInt(1000), bonded.Bonded.AmountOf("ampwhale"))
	assert.Equal(t, sdkmath.NewInt(500), bonded.Bonded.AmountOf("bwhale"))
	assert.Equal(t, "1500", bonded.TotalBonded)
	require.NotNil(t, bonded.FirstBondedEpochID)
	assert.Equal(t, uint64(2), *bonded.FirstBondedEpochID)
}

func TestBondedByAddressNoBonds(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).Return([]model.BondDocument{}, nil)

	bonded, err := services.BondedByAddress(context.Background(), testAddress)
	require.Nil(t, err)
	assert.True(t, bonded.Bonded.IsZero())
	assert.Equal(t, "0", bonded.TotalBonded)
	assert.Nil(t, bonded.FirstBondedEpochID)
}

func TestGlobalBonded(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindGlobalIndex", mock.Anything).Return(&model.GlobalIndexDocument{
		ID:           model.GlobalIndexDocumentID,
		BondedAmount: "1500",
		BondedAssets: []model.CoinDocument{
			{Denom: "ampwhale", Amount: "1000"},
			{Denom: "bwhale", Amount: "500"},
		},
		Weight: "0",
	}, nil)

	bonded, err := services.GlobalBonded(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "1500", bonded.TotalBonded)
	assert.Equal(t, sdkmath.NewInt(1000), bonded.Bonded.AmountOf("ampwhale"))
}

func TestGlobalBondedBeforeAnyBond(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindGlobalIndex", mock.Anything).
		Return(nil, &db.NotFoundError{Key: "global", Message: "not found"})

	bonded, err := services.GlobalBonded(context.Background())
	require.Nil(t, err)
	assert.True(t, bonded.Bonded.IsZero())
	assert.Equal(t, "0", bonded.TotalBonded)
}
