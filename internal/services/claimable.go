package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/core"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// RewardBucketPublic is the external view of a reward bucket.
type RewardBucketPublic struct {
	EpochID        uint64      `json:"epoch_id"`
	EpochStartTime int64       `json:"epoch_start_time"`
	Total          types.Coins `json:"total"`
	Available      types.Coins `json:"available"`
	Claimed        types.Coins `json:"claimed"`
}

func fromRewardBucket(b types.RewardBucket) RewardBucketPublic {
	return RewardBucketPublic{
		EpochID:        b.EpochID,
		EpochStartTime: b.EpochStartTime,
		Total:          b.Total,
		Available:      b.Available,
		Claimed:        b.Claimed,
	}
}

// ClaimableEpochs lists the reward buckets inside the grace window that
// still hold an available balance. With an address, the list is further
// narrowed to the epochs that address could actually claim, using the same
// filter as claim settlement.
func (s *Services) ClaimableEpochs(ctx context.Context, address string) ([]RewardBucketPublic, *types.Error) {
	docs, err := s.DbClient.FindRewardBuckets(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to find reward buckets")
		return nil, types.NewInternalServiceError(err)
	}

	buckets := make([]types.RewardBucket, 0, len(docs))
	var currentEpochID uint64
	for _, doc := range docs {
		bucket, convErr := doc.ToRewardBucket()
		if convErr != nil {
			return nil, types.NewInternalServiceError(convErr)
		}
		buckets = append(buckets, bucket)
		if bucket.EpochID > currentEpochID {
			currentEpochID = bucket.EpochID
		}
	}

	claimable := core.ClaimableEpochs(buckets, currentEpochID, s.cfg.Bonding.GracePeriod)

	if address != "" {
		lastClaimed, firstBonded, svcErr := s.claimBounds(ctx, address)
		if svcErr != nil {
			return nil, svcErr
		}
		claimable = core.EligibleBuckets(claimable, lastClaimed, firstBonded)
	}

	out := make([]RewardBucketPublic, 0, len(claimable))
	for _, bucket := range claimable {
		out = append(out, fromRewardBucket(bucket))
	}
	return out, nil
}

// ensureRewardsClaimed rejects position changes while the address still has
// claimable buckets. Each bucket settles against its epoch-start snapshot,
// and a bond or unbond in between would make the live position diverge from
// the position that snapshot priced.
func (s *Services) ensureRewardsClaimed(ctx context.Context, address string) *types.Error {
	claimable, err := s.ClaimableEpochs(ctx, address)
	if err != nil {
		return err
	}
	if len(claimable) > 0 {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.UnclaimedRewards,
			"pending rewards must be claimed before the bonded position changes",
		)
	}
	return nil
}

func (s *Services) claimBounds(ctx context.Context, address string) (*uint64, *uint64, *types.Error) {
	var lastClaimed *uint64
	lastClaimedDoc, err := s.DbClient.FindLastClaimedEpoch(ctx, address)
	if err != nil && !db.IsNotFoundError(err) {
		return nil, nil, types.NewInternalServiceError(err)
	}
	if err == nil {
		lastClaimed = &lastClaimedDoc.EpochID
	}

	var firstBonded *uint64
	bonds, bondErr := s.DbClient.FindBondsByAddress(ctx, address)
	if bondErr != nil {
		return nil, nil, types.NewInternalServiceError(bondErr)
	}
	for _, doc := range bonds {
		if firstBonded == nil || doc.CreatedAtEpoch < *firstBonded {
			epoch := doc.CreatedAtEpoch
			firstBonded = &epoch
		}
	}
	return lastClaimed, firstBonded, nil
}
