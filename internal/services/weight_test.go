package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

func TestWeightByAddressLive(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindGlobalIndex", mock.Anything).Return(&model.GlobalIndexDocument{
		ID:           model.GlobalIndexDocumentID,
		BondedAmount: "2000",
		BondedAssets: []model.CoinDocument{{Denom: testBondDenom, Amount: "2000"}},
		Weight:       "0",
		LastUpdated:  900_000,
	}, nil)
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).Return([]model.BondDocument{
		{
			Address:     testAddress,
			Denom:       testBondDenom,
			Amount:      "1000",
			Weight:      "0",
			LastUpdated: 900_000,
		},
	}, nil)

	// frozen clock at 1_000_000: 100_000 elapsed seconds
	weight, err := services.WeightByAddress(context.Background(), testAddress, nil, nil)
	require.Nil(t, err)
	assert.Equal(t, "100000000", weight.Weight)
	assert.Equal(t, "200000000", weight.GlobalWeight)
	assert.Equal(t, "0.500000000000000000", weight.Share)
	assert.Equal(t, int64(1_000_000), weight.Timestamp)
	assert.Nil(t, weight.EpochID)
}

func TestWeightByAddressNoBondsNoIndex(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindGlobalIndex", mock.Anything).
		Return(nil, &db.NotFoundError{Key: "global", Message: "not found"})
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).
		Return([]model.BondDocument{}, nil)

	weight, err := services.WeightByAddress(context.Background(), testAddress, nil, nil)
	require.Nil(t, err)
	assert.Equal(t, "0", weight.Weight)
	assert.Equal(t, "0", weight.GlobalWeight)
	assert.Equal(t, "0.000000000000000000", weight.Share)
}

func TestWeightByAddressAtEpochSnapshot(t *testing.T) {
	services, deps := setupTestServices(t)

	epochID := uint64(4)
	deps.db.On("FindRewardBucket", mock.Anything, epochID).Return(&model.RewardBucketDocument{
		ID:             epochID,
		EpochStartTime: 950_000,
		GlobalIndex: model.GlobalIndexDocument{
			BondedAmount: "2000",
			Weight:       "100000000",
			LastUpdated:  950_000,
			EpochID:      epochID,
		},
	}, nil)
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).Return([]model.BondDocument{
		{
			Address:     testAddress,
			Denom:       testBondDenom,
			Amount:      "1000",
			Weight:      "0",
			LastUpdated: 900_000,
		},
	}, nil)

	weight, err := services.WeightByAddress(context.Background(), testAddress, nil, &epochID)
	require.Nil(t, err)
	// 1000 tokens for 50_000 seconds against the frozen snapshot
	assert.Equal(t, "50000000", weight.Weight)
	assert.Equal(t, "100000000", weight.GlobalWeight)
	assert.Equal(t, "0.500000000000000000", weight.Share)
	assert.Equal(t, int64(950_000), weight.Timestamp)
	require.NotNil(t, weight.EpochID)
	assert.Equal(t, epochID, *weight.EpochID)
}

func TestWeightByAddressUnknownEpoch(t *testing.T) {
	services, deps := setupTestServices(t)

	epochID := uint64(99)
	deps.db.On("FindRewardBucket", mock.Anything, epochID).
		Return(nil, &db.NotFoundError{Key: "99", Message: "not found"})

	_, err := services.WeightByAddress(context.Background(), testAddress, nil, &epochID)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}

func TestWeightByAddressAtTimestamp(t *testing.T) {
	services, deps := setupTestServices(t)

	timestamp := int64(960_000)
	deps.epochManager.On("EpochForTimestamp", mock.Anything, timestamp).
		Return(&types.Epoch{ID: 4, StartTime: 950_000}, nil)
	deps.db.On("FindRewardBucket", mock.Anything, uint64(4)).Return(&model.RewardBucketDocument{
		ID:             4,
		EpochStartTime: 950_000,
		GlobalIndex: model.GlobalIndexDocument{
			BondedAmount: "2000",
			Weight:       "100000000",
			LastUpdated:  950_000,
			EpochID:      4,
		},
	}, nil)
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).Return([]model.BondDocument{
		{
			Address:     testAddress,
			Denom:       testBondDenom,
			Amount:      "1000",
			Weight:      "0",
			LastUpdated: 900_000,
		},
	}, nil)

	weight, err := services.WeightByAddress(context.Background(), testAddress, &timestamp, nil)
	require.Nil(t, err)
	// weight evaluated at the requested timestamp, share against the snapshot
	assert.Equal(t, "60000000", weight.Weight)
	assert.Equal(t, "100000000", weight.GlobalWeight)
	assert.Equal(t, "0.600000000000000000", weight.Share)
	assert.Equal(t, int64(960_000), weight.Timestamp)
	require.NotNil(t, weight.EpochID)
	assert.Equal(t, uint64(4), *weight.EpochID)
}

func TestWeightByAddressAtTimestampPropagatesSnapshotFailure(t *testing.T) {
	services, deps := setupTestServices(t)

	timestamp := int64(960_000)
	deps.epochManager.On("EpochForTimestamp", mock.Anything, timestamp).
		Return(&types.Epoch{ID: 4, StartTime: 950_000}, nil)
	deps.db.On("FindRewardBucket", mock.Anything, uint64(4)).
		Return(nil, errors.New("connection reset"))

	_, err := services.WeightByAddress(context.Background(), testAddress, &timestamp, nil)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	deps.db.AssertNotCalled(t, "FindGlobalIndex", mock.Anything)
}

func TestWeightByAddressAtTimestampWithoutBucketUsesLiveIndex(t *testing.T) {
	services, deps := setupTestServices(t)

	timestamp := int64(960_000)
	deps.epochManager.On("EpochForTimestamp", mock.Anything, timestamp).
		Return(&types.Epoch{ID: 4, StartTime: 950_000}, nil)
	deps.db.On("FindRewardBucket", mock.Anything, uint64(4)).
		Return(nil, &db.NotFoundError{Key: "4", Message: "not found"})
	deps.db.On("FindGlobalIndex", mock.Anything).Return(&model.GlobalIndexDocument{
		ID:           model.GlobalIndexDocumentID,
		BondedAmount: "2000",
		BondedAssets: []model.CoinDocument{{Denom: testBondDenom, Amount: "2000"}},
		Weight:       "0",
		LastUpdated:  900_000,
	}, nil)
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).Return([]model.BondDocument{
		{
			Address:     testAddress,
			Denom:       testBondDenom,
			Amount:      "1000",
			Weight:      "0",
			LastUpdated: 900_000,
		},
	}, nil)

	weight, err := services.WeightByAddress(context.Background(), testAddress, &timestamp, nil)
	require.Nil(t, err)
	assert.Equal(t, "60000000", weight.Weight)
	assert.Equal(t, "120000000", weight.GlobalWeight)
	assert.Equal(t, "0.500000000000000000", weight.Share)
	assert.Equal(t, int64(960_000), weight.Timestamp)
	assert.Nil(t, weight.EpochID)
}
