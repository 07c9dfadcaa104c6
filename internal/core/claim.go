package core

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// BucketSettlement records what one claim takes out of one reward bucket.
type BucketSettlement struct {
	EpochID   uint64
	Rewards   types.Coins
	Available types.Coins // bucket available after settlement
	Claimed   types.Coins // bucket claimed after settlement
}

// ClaimResult is a fully computed claim, ready to be persisted atomically.
type ClaimResult struct {
	Settlements      []BucketSettlement
	Payout           types.Coins
	LastClaimedEpoch uint64
}

// EligibleBuckets applies the claim eligibility filter: only epochs newer
// than the address's claim floor, or newer than its first bonded epoch when
// it has never claimed. Addresses that never bonded get nothing. The floor
// advances on claims and on every bond or unbond, so each eligible bucket's
// snapshot postdates the address's last position change.
func EligibleBuckets(buckets []types.RewardBucket, lastClaimed *uint64, firstBondedEpoch *uint64) []types.RewardBucket {
	if lastClaimed == nil && firstBondedEpoch == nil {
		return nil
	}
	floor := uint64(0)
	if lastClaimed != nil {
		floor = *lastClaimed
	} else {
		floor = *firstBondedEpoch
	}
	var out []types.RewardBucket
	for _, b := range buckets {
		if b.EpochID > floor {
			out = append(out, b)
		}
	}
	return out
}

// ComputeClaim walks the eligible buckets and computes the pro-rata payout
// for the given bonds. Each bucket is settled against its own immutable
// global-index snapshot, so the result cannot drift if live state changes
// between computation and persistence. Buckets must come from
// EligibleBuckets: their snapshots postdate every bond's LastUpdated, which
// keeps the replayed weight consistent with the snapshot denominator.
func ComputeClaim(bonds []types.Bond, buckets []types.RewardBucket, growthRate sdkmath.LegacyDec) (*ClaimResult, error) {
	result := &ClaimResult{Payout: types.Coins{}}
	for _, bucket := range buckets {
		weight := sdkmath.ZeroInt()
		for _, bond := range bonds {
			weight = weight.Add(BondWeightAt(bond, growthRate, bucket.EpochStartTime))
		}
		share := Share(weight, bucket.GlobalIndex.Weight)

		settlement := BucketSettlement{
			EpochID:   bucket.EpochID,
			Rewards:   types.Coins{},
			Available: bucket.Available.Clone(),
			Claimed:   bucket.Claimed.Clone(),
		}
		for _, c := range bucket.Total {
			reward := share.MulInt(c.Amount).TruncateInt()
			if reward.IsZero() {
				continue
			}
			available := settlement.Available.AmountOf(c.Denom)
			if reward.GT(available) {
				// The snapshot share can never exceed what is left in the
				// bucket; hitting this means the accounting is corrupt.
				return nil, fmt.Errorf("invalid share: reward %s%s exceeds available %s in bucket %d",
					reward.String(), c.Denom, available.String(), bucket.EpochID)
			}
			remaining, err := settlement.Available.Subtract(types.NewCoin(c.Denom, reward))
			if err != nil {
				return nil, err
			}
			settlement.Available = remaining
			settlement.Claimed = settlement.Claimed.Aggregate(types.NewCoin(c.Denom, reward))
			settlement.Rewards = settlement.Rewards.Aggregate(types.NewCoin(c.Denom, reward))
		}
		result.Settlements = append(result.Settlements, settlement)
		result.Payout = result.Payout.AggregateAll(settlement.Rewards)
		if bucket.EpochID > result.LastClaimedEpoch {
			result.LastClaimedEpoch = bucket.EpochID
		}
	}
	return result, nil
}
