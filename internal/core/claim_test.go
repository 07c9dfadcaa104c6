package core

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

func uintPtr(v uint64) *uint64 {
	return &v
}

func TestEligibleBuckets(t *testing.T) {
	buckets := []types.RewardBucket{
		{EpochID: 1}, {EpochID: 2}, {EpochID: 3},
	}

	// never bonded, never claimed
	assert.Nil(t, EligibleBuckets(buckets, nil, nil))

	// claimed up to epoch 2: only epoch 3 remains
	eligible := EligibleBuckets(buckets, uintPtr(2), uintPtr(1))
	require.Len(t, eligible, 1)
	assert.Equal(t, uint64(3), eligible[0].EpochID)

	// never claimed, first bonded in epoch 1: epochs 2 and 3
	eligible = EligibleBuckets(buckets, nil, uintPtr(1))
	require.Len(t, eligible, 2)
	assert.Equal(t, uint64(2), eligible[0].EpochID)
	assert.Equal(t, uint64(3), eligible[1].EpochID)

	// claimed everything already
	assert.Empty(t, EligibleBuckets(buckets, uintPtr(3), nil))
}

func TestComputeClaimSoleBonderTakesAll(t *testing.T) {
	rate := sdkmath.LegacyOneDec()
	bonds := []types.Bond{{
		Address:     "hub1bonder",
		Denom:       "ampwhale",
		Amount:      sdkmath.NewInt(1000),
		Weight:      sdkmath.ZeroInt(),
		LastUpdated: 0,
	}}
	buckets := []types.RewardBucket{{
		EpochID:        1,
		EpochStartTime: 100,
		Total:          types.NewCoins(types.NewInt64Coin("uwhale", 500)),
		Available:      types.NewCoins(types.NewInt64Coin("uwhale", 500)),
		Claimed:        types.Coins{},
		GlobalIndex: types.GlobalIndex{
			BondedAmount: sdkmath.NewInt(1000),
			Weight:       sdkmath.NewInt(100_000),
			LastUpdated:  100,
			EpochID:      1,
		},
	}}

	result, err := ComputeClaim(bonds, buckets, rate)
	require.NoError(t, err)
	require.Len(t, result.Settlements, 1)

	assert.Equal(t, sdkmath.NewInt(500), result.Payout.AmountOf("uwhale"))
	assert.Equal(t, uint64(1), result.LastClaimedEpoch)

	settlement := result.Settlements[0]
	assert.Equal(t, uint64(1), settlement.EpochID)
	assert.True(t, settlement.Available.IsZero())
	assert.Equal(t, sdkmath.NewInt(500), settlement.Claimed.AmountOf("uwhale"))
}

func TestComputeClaimProRataShare(t *testing.T) {
	rate := sdkmath.LegacyOneDec()
	// this bonder holds a quarter of the snapshot weight
	bonds := []types.Bond{{
		Amount:      sdkmath.NewInt(250),
		Weight:      sdkmath.ZeroInt(),
		LastUpdated: 0,
	}}
	buckets := []types.RewardBucket{{
		EpochID:        2,
		EpochStartTime: 100,
		Total:          types.NewCoins(types.NewInt64Coin("uwhale", 1000)),
		Available:      types.NewCoins(types.NewInt64Coin("uwhale", 1000)),
		Claimed:        types.Coins{},
		GlobalIndex: types.GlobalIndex{
			BondedAmount: sdkmath.NewInt(1000),
			Weight:       sdkmath.NewInt(100_000),
			LastUpdated:  100,
		},
	}}

	result, err := ComputeClaim(bonds, buckets, rate)
	require.NoError(t, err)
	assert.Equal(t, sdkmath.NewInt(250), result.Payout.AmountOf("uwhale"))

	settlement := result.Settlements[0]
	assert.Equal(t, sdkmath.NewInt(750), settlement.Available.AmountOf("uwhale"))
	assert.Equal(t, sdkmath.NewInt(250), settlement.Claimed.AmountOf("uwhale"))
}

func TestComputeClaimSettlesAgainstSnapshotNotLiveState(t *testing.T) {
	rate := sdkmath.LegacyOneDec()
	// bond kept accruing long past the epoch start; only the accrual up to
	// the snapshot instant counts
	bonds := []types.Bond{{
		Amount:      sdkmath.NewInt(1000),
		Weight:      sdkmath.ZeroInt(),
		LastUpdated: 0,
	}}
	buckets := []types.RewardBucket{{
		EpochID:        1,
		EpochStartTime: 100,
		Total:          types.NewCoins(types.NewInt64Coin("uwhale", 400)),
		Available:      types.NewCoins(types.NewInt64Coin("uwhale", 400)),
		Claimed:        types.Coins{},
		GlobalIndex: types.GlobalIndex{
			// two equal bonders at the snapshot
			BondedAmount: sdkmath.NewInt(2000),
			Weight:       sdkmath.NewInt(200_000),
			LastUpdated:  100,
		},
	}}

	result, err := ComputeClaim(bonds, buckets, rate)
	require.NoError(t, err)
	assert.Equal(t, sdkmath.NewInt(200), result.Payout.AmountOf("uwhale"))
}

func TestComputeClaimAcrossMultipleBuckets(t *testing.T) {
	rate := sdkmath.LegacyOneDec()
	bonds := []types.Bond{{
		Amount:      sdkmath.NewInt(1000),
		Weight:      sdkmath.ZeroInt(),
		LastUpdated: 0,
	}}
	snapshot := func(startTime int64, epochID uint64) types.GlobalIndex {
		return types.GlobalIndex{
			BondedAmount: sdkmath.NewInt(1000),
			Weight:       sdkmath.NewInt(startTime * 1000),
			LastUpdated:  startTime,
			EpochID:      epochID,
		}
	}
	buckets := []types.RewardBucket{
		{
			EpochID:        1,
			EpochStartTime: 100,
			Total:          types.NewCoins(types.NewInt64Coin("uwhale", 300)),
			Available:      types.NewCoins(types.NewInt64Coin("uwhale", 300)),
			Claimed:        types.Coins{},
			GlobalIndex:    snapshot(100, 1),
		},
		{
			EpochID:        2,
			EpochStartTime: 200,
			Total:          types.NewCoins(types.NewInt64Coin("uwhale", 700)),
			Available:      types.NewCoins(types.NewInt64Coin("uwhale", 700)),
			Claimed:        types.Coins{},
			GlobalIndex:    snapshot(200, 2),
		},
	}

	result, err := ComputeClaim(bonds, buckets, rate)
	require.NoError(t, err)
	require.Len(t, result.Settlements, 2)
	assert.Equal(t, sdkmath.NewInt(1000), result.Payout.AmountOf("uwhale"))
	assert.Equal(t, uint64(2), result.LastClaimedEpoch)
}

func TestComputeClaimRejectsShareExceedingAvailable(t *testing.T) {
	rate := sdkmath.LegacyOneDec()
	bonds := []types.Bond{{
		Amount:      sdkmath.NewInt(1000),
		Weight:      sdkmath.ZeroInt(),
		LastUpdated: 0,
	}}
	// corrupted bucket: full share of total but most of it already drained
	buckets := []types.RewardBucket{{
		EpochID:        1,
		EpochStartTime: 100,
		Total:          types.NewCoins(types.NewInt64Coin("uwhale", 1000)),
		Available:      types.NewCoins(types.NewInt64Coin("uwhale", 10)),
		Claimed:        types.Coins{},
		GlobalIndex: types.GlobalIndex{
			BondedAmount: sdkmath.NewInt(1000),
			Weight:       sdkmath.NewInt(100_000),
			LastUpdated:  100,
		},
	}}

	_, err := ComputeClaim(bonds, buckets, rate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid share")
}

func TestClaimAfterTopUpSettlesOnlyPostChangeBuckets(t *testing.T) {
	rate := sdkmath.LegacyOneDec()
	// sole bonder topped up at t=200, after bucket 1's snapshot. The claim
	// floor was advanced to epoch 1 when that happened, so bucket 1 drops
	// out of the eligible set and the replayed weight stays consistent
	// with every remaining snapshot.
	bonds := []types.Bond{{
		Address:     "hub1bonder",
		Denom:       "ampwhale",
		Amount:      sdkmath.NewInt(1500),
		Weight:      sdkmath.NewInt(200_000),
		LastUpdated: 200,
	}}
	buckets := []types.RewardBucket{
		{
			EpochID:        1,
			EpochStartTime: 100,
			Total:          types.NewCoins(types.NewInt64Coin("uwhale", 1000)),
			Available:      types.NewCoins(types.NewInt64Coin("uwhale", 1000)),
			Claimed:        types.Coins{},
			GlobalIndex: types.GlobalIndex{
				BondedAmount: sdkmath.NewInt(1000),
				Weight:       sdkmath.NewInt(100_000),
				LastUpdated:  100,
				EpochID:      1,
			},
		},
		{
			EpochID:        2,
			EpochStartTime: 300,
			Total:          types.NewCoins(types.NewInt64Coin("uwhale", 600)),
			Available:      types.NewCoins(types.NewInt64Coin("uwhale", 600)),
			Claimed:        types.Coins{},
			GlobalIndex: types.GlobalIndex{
				BondedAmount: sdkmath.NewInt(1500),
				Weight:       sdkmath.NewInt(350_000),
				LastUpdated:  300,
				EpochID:      2,
			},
		},
	}

	eligible := EligibleBuckets(buckets, uintPtr(1), uintPtr(1))
	require.Len(t, eligible, 1)
	assert.Equal(t, uint64(2), eligible[0].EpochID)

	result, err := ComputeClaim(bonds, eligible, rate)
	require.NoError(t, err)
	assert.Equal(t, sdkmath.NewInt(600), result.Payout.AmountOf("uwhale"))
	assert.Equal(t, uint64(2), result.LastClaimedEpoch)
}

func TestComputeClaimZeroWeightYieldsNothing(t *testing.T) {
	rate := sdkmath.LegacyOneDec()
	// bond created after the snapshot instant accrued nothing by then
	bonds := []types.Bond{{
		Amount:      sdkmath.NewInt(1000),
		Weight:      sdkmath.ZeroInt(),
		LastUpdated: 500,
	}}
	buckets := []types.RewardBucket{{
		EpochID:        1,
		EpochStartTime: 100,
		Total:          types.NewCoins(types.NewInt64Coin("uwhale", 1000)),
		Available:      types.NewCoins(types.NewInt64Coin("uwhale", 1000)),
		Claimed:        types.Coins{},
		GlobalIndex: types.GlobalIndex{
			BondedAmount: sdkmath.NewInt(2000),
			Weight:       sdkmath.NewInt(100_000),
			LastUpdated:  100,
		},
	}}

	result, err := ComputeClaim(bonds, buckets, rate)
	require.NoError(t, err)
	assert.True(t, result.Payout.IsZero())
	require.Len(t, result.Settlements, 1)
	assert.Equal(t, sdkmath.NewInt(1000), result.Settlements[0].Available.AmountOf("uwhale"))
}
