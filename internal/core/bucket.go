package core

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// PromotionResult is the outcome of an epoch transition: the freshly created
// bucket and, when a bucket fell out of the grace window, that bucket with
// its available balance drained.
type PromotionResult struct {
	NewBucket      types.RewardBucket
	ExpiredBucket  *types.RewardBucket
	ForwardedCoins types.Coins
}

// ExpiringBucketID returns the id of the bucket that expires when newEpochID
// is created, along with whether such an id exists at all.
func ExpiringBucketID(newEpochID, gracePeriod uint64) (uint64, bool) {
	age := gracePeriod + 1
	if newEpochID < age {
		return 0, false
	}
	return newEpochID - age, true
}

// PromoteUpcoming runs the epoch transition state machine:
//
//  1. zero-amount coins are pruned from the upcoming accumulator,
//  2. a new bucket is created carrying the upcoming fees and an immutable
//     snapshot of the global index accrued to the epoch start time,
//  3. the bucket that is now gracePeriod+1 epochs old has its remaining
//     available balance forwarded into the new bucket and is drained.
//
// Forwarding moves value, never duplicates it: the expired bucket keeps its
// total/claimed history but its available goes to zero in the same commit
// that grows the new bucket.
func PromoteUpcoming(
	upcoming types.UpcomingRewardBucket,
	expiring *types.RewardBucket,
	index types.GlobalIndex,
	epoch types.Epoch,
	growthRate sdkmath.LegacyDec,
) PromotionResult {
	fees := types.NewCoins(upcoming.Total...)

	snapshot := index.Clone()
	snapshot.Weight = GlobalWeightAt(snapshot, growthRate, epoch.StartTime)
	snapshot.LastUpdated = epoch.StartTime
	snapshot.EpochID = epoch.ID

	bucket := types.RewardBucket{
		EpochID:        epoch.ID,
		EpochStartTime: epoch.StartTime,
		Total:          fees,
		Available:      fees.Clone(),
		Claimed:        types.Coins{},
		GlobalIndex:    snapshot,
	}

	result := PromotionResult{NewBucket: bucket}
	if expiring != nil && !expiring.Available.IsZero() {
		forwarded := expiring.Available.Clone()
		result.NewBucket.Total = result.NewBucket.Total.AggregateAll(forwarded)
		result.NewBucket.Available = result.NewBucket.Available.AggregateAll(forwarded)

		drained := *expiring
		drained.Total = expiring.Total.Clone()
		drained.Claimed = expiring.Claimed.Clone()
		drained.Available = types.Coins{}
		result.ExpiredBucket = &drained
		result.ForwardedCoins = forwarded
	}
	return result
}

// ClaimableEpochs filters bucket ids down to the claimable window: strictly
// within the most recent gracePeriod+1 epochs, excluding the newest (the
// in-progress epoch), and holding a non-empty available balance.
func ClaimableEpochs(buckets []types.RewardBucket, currentEpochID, gracePeriod uint64) []types.RewardBucket {
	var lowest uint64
	if currentEpochID > gracePeriod {
		lowest = currentEpochID - gracePeriod
	}
	var out []types.RewardBucket
	for _, b := range buckets {
		if b.EpochID >= lowest && b.EpochID < currentEpochID && !b.Available.IsZero() {
			out = append(out, b)
		}
	}
	return out
}

// CheckBucketInvariants verifies the permanent bucket accounting invariants.
// A violation signals a bug in claim settlement or forwarding.
func CheckBucketInvariants(bucket types.RewardBucket) error {
	for _, c := range bucket.Available {
		if c.Amount.GT(bucket.Total.AmountOf(c.Denom)) {
			return fmt.Errorf("bucket %d: available %s exceeds total %s",
				bucket.EpochID, c.String(), bucket.Total.AmountOf(c.Denom).String())
		}
	}
	for _, c := range bucket.Claimed {
		sum := c.Amount.Add(bucket.Available.AmountOf(c.Denom))
		if sum.GT(bucket.Total.AmountOf(c.Denom)) {
			return fmt.Errorf("bucket %d: claimed+available %s exceeds total for %s",
				bucket.EpochID, sum.String(), c.Denom)
		}
	}
	return nil
}
