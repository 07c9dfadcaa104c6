package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
)

func rewardBucketDoc(epochID uint64, available string) model.RewardBucketDocument {
	doc := model.RewardBucketDocument{
		ID:             epochID,
		EpochStartTime: int64(epochID) * 100,
		Total:          []model.CoinDocument{{Denom: testRewardDenom, Amount: "1000"}},
		Claimed:        []model.CoinDocument{},
		GlobalIndex: model.GlobalIndexDocument{
			BondedAmount: "1000",
			Weight:       "1000",
			EpochID:      epochID,
		},
	}
	if available != "" {
		doc.Available = []model.CoinDocument{{Denom: testRewardDenom, Amount: available}}
	}
	return doc
}

func TestClaimableEpochsWithoutAddress(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindRewardBuckets", mock.Anything).Return([]model.RewardBucketDocument{
		rewardBucketDoc(5, "1000"),
		rewardBucketDoc(4, "1000"),
		rewardBucketDoc(3, ""),
		rewardBucketDoc(2, "1000"),
	}, nil)

	buckets, err := services.ClaimableEpochs(context.Background(), "")
	require.Nil(t, err)
	// epoch 5 is in progress, epoch 3 is drained
	require.Len(t, buckets, 2)
	ids := []uint64{buckets[0].EpochID, buckets[1].EpochID}
	assert.Contains(t, ids, uint64(4))
	assert.Contains(t, ids, uint64(2))
}

func TestClaimableEpochsNarrowedByAddress(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindRewardBuckets", mock.Anything).Return([]model.RewardBucketDocument{
		rewardBucketDoc(5, "1000"),
		rewardBucketDoc(4, "1000"),
		rewardBucketDoc(3, "1000"),
	}, nil)
	deps.db.On("FindLastClaimedEpoch", mock.Anything, testAddress).
		Return(&model.LastClaimedEpochDocument{ID: testAddress, EpochID: 3}, nil)
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).Return([]model.BondDocument{
		{Address: testAddress, Denom: testBondDenom, Amount: "100", Weight: "0", CreatedAtEpoch: 1},
	}, nil)

	buckets, err := services.ClaimableEpochs(context.Background(), testAddress)
	require.Nil(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, uint64(4), buckets[0].EpochID)
}

func TestClaimableEpochsAddressNeverBondedOrClaimed(t *testing.T) {
	services, deps := setupTestServices(t)

	deps.db.On("FindRewardBuckets", mock.Anything).Return([]model.RewardBucketDocument{
		rewardBucketDoc(5, "1000"),
		rewardBucketDoc(4, "1000"),
	}, nil)
	deps.db.On("FindLastClaimedEpoch", mock.Anything, testAddress).
		Return(nil, &db.NotFoundError{Key: testAddress, Message: "never claimed"})
	deps.db.On("FindBondsByAddress", mock.Anything, testAddress).
		Return([]model.BondDocument{}, nil)

	buckets, err := services.ClaimableEpochs(context.Background(), testAddress)
	require.Nil(t, err)
	assert.Empty(t, buckets)
}
