package types

import (
	sdkmath "cosmossdk.io/math"
)

// Bond is a user's live position in one bonding denom. Weight accrues over
// time while bonded; it is recomputed up to "now" before every amount change.
type Bond struct {
	Address        string
	Denom          string
	Amount         sdkmath.Int
	Weight         sdkmath.Int
	LastUpdated    int64 // unix seconds of the last weight recomputation
	CreatedAtEpoch uint64
}

// Unbond is a withdrawal request in its unbonding delay. It no longer accrues
// weight; UnbondedAt is the unix time after which it becomes withdrawable.
type Unbond struct {
	Address    string
	Denom      string
	Amount     sdkmath.Int
	Sequence   uint64
	UnbondedAt int64
	CreatedAt  int64
}

// GlobalIndex aggregates all live bonds. BondedAmount always equals the sum
// of live bond amounts; every bond mutation carries the paired index update
// in the same transaction.
type GlobalIndex struct {
	BondedAmount sdkmath.Int
	BondedAssets Coins
	Weight       sdkmath.Int
	LastUpdated  int64
	EpochID      uint64
}

// Clone returns a deep copy, used when snapshotting the index into a reward
// bucket so later mutations cannot leak into history.
func (g GlobalIndex) Clone() GlobalIndex {
	out := g
	out.BondedAssets = g.BondedAssets.Clone()
	return out
}

// RewardBucket holds the fees collected during one epoch. Total and Claimed
// are permanent history; Available is drained by claims and by forwarding
// once the bucket falls out of the grace window.
type RewardBucket struct {
	EpochID        uint64
	EpochStartTime int64
	Total          Coins
	Available      Coins
	Claimed        Coins
	GlobalIndex    GlobalIndex
}

// UpcomingRewardBucket accumulates fees since the last epoch creation; it is
// promoted into a RewardBucket on the next epoch-changed signal and reset.
type UpcomingRewardBucket struct {
	Total Coins
}

// Epoch is the epoch manager's announcement payload.
type Epoch struct {
	ID        uint64 `json:"id"`
	StartTime int64  `json:"start_time"`
}
