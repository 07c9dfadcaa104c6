package model

import (
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

type RewardBucketDocument struct {
	// Primary key, the epoch id
	ID             uint64              `bson:"_id"`
	EpochStartTime int64               `bson:"epoch_start_time"`
	Total          []CoinDocument      `bson:"total"`
	Available      []CoinDocument      `bson:"available"`
	Claimed        []CoinDocument      `bson:"claimed"`
	GlobalIndex    GlobalIndexDocument `bson:"global_index"`
}

func FromRewardBucket(b types.RewardBucket) RewardBucketDocument {
	snapshot := FromGlobalIndex(b.GlobalIndex)
	snapshot.EpochID = b.GlobalIndex.EpochID
	return RewardBucketDocument{
		ID:             b.EpochID,
		EpochStartTime: b.EpochStartTime,
		Total:          FromCoins(b.Total),
		Available:      FromCoins(b.Available),
		Claimed:        FromCoins(b.Claimed),
		GlobalIndex:    snapshot,
	}
}

func (d RewardBucketDocument) ToRewardBucket() (types.RewardBucket, error) {
	total, err := ToCoins(d.Total)
	if err != nil {
		return types.RewardBucket{}, err
	}
	available, err := ToCoins(d.Available)
	if err != nil {
		return types.RewardBucket{}, err
	}
	claimed, err := ToCoins(d.Claimed)
	if err != nil {
		return types.RewardBucket{}, err
	}
	snapshot, err := d.GlobalIndex.ToGlobalIndex()
	if err != nil {
		return types.RewardBucket{}, err
	}
	return types.RewardBucket{
		EpochID:        d.ID,
		EpochStartTime: d.EpochStartTime,
		Total:          total,
		Available:      available,
		Claimed:        claimed,
		GlobalIndex:    snapshot,
	}, nil
}

const UpcomingBucketDocumentID = "upcoming"

type UpcomingBucketDocument struct {
	ID    string         `bson:"_id"`
	Total []CoinDocument `bson:"total"`
}

type LastClaimedEpochDocument struct {
	// Primary key, the claimer address
	ID      string `bson:"_id"`
	EpochID uint64 `bson:"epoch_id"`
}

// CounterDocument allocates monotonic sequences (unbonding entry ids).
type CounterDocument struct {
	ID       string `bson:"_id"`
	Sequence uint64 `bson:"sequence"`
}
