package services

import (
	"context"
	"net/http"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/core"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// WeightPublic is the external view of an address's voting weight.
type WeightPublic struct {
	Address      string  `json:"address"`
	Weight       string  `json:"weight"`
	GlobalWeight string  `json:"global_weight"`
	Share        string  `json:"share"`
	Timestamp    int64   `json:"timestamp"`
	EpochID      *uint64 `json:"epoch_id,omitempty"`
}

// WeightByAddress recomputes an address's weight and share either live, as
// of a historical timestamp, or against a specific epoch's snapshot. It is
// the same math claims settle with, without any mutation.
func (s *Services) WeightByAddress(
	ctx context.Context, address string, timestamp *int64, epochID *uint64,
) (*WeightPublic, *types.Error) {
	var (
		at          int64
		globalIndex types.GlobalIndex
		snapshotted bool
		resolvedID  *uint64
	)

	switch {
	case epochID != nil:
		bucket, svcErr := s.snapshotForEpoch(ctx, *epochID)
		if svcErr != nil {
			return nil, svcErr
		}
		globalIndex = bucket.GlobalIndex
		at = bucket.EpochStartTime
		snapshotted = true
		resolvedID = epochID
	case timestamp != nil:
		at = *timestamp
		epoch, clientErr := s.Clients.EpochManager.EpochForTimestamp(ctx, at)
		if clientErr != nil {
			return nil, clientErr
		}
		bucket, svcErr := s.snapshotForEpoch(ctx, epoch.ID)
		switch {
		case svcErr == nil:
			globalIndex = bucket.GlobalIndex
			snapshotted = true
			id := epoch.ID
			resolvedID = &id
		case svcErr.StatusCode != http.StatusNotFound:
			return nil, svcErr
		}
		// No bucket for that epoch yet, fall back to the live index.
	default:
		at = s.now()
	}

	if !snapshotted {
		index, svcErr := s.liveGlobalIndex(ctx)
		if svcErr != nil {
			return nil, svcErr
		}
		globalIndex = *index
	}

	docs, err := s.DbClient.FindBondsByAddress(ctx, address)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to find bonds for weight query")
		return nil, types.NewInternalServiceError(err)
	}
	weight := sdkmath.ZeroInt()
	growthRate := s.cfg.Bonding.GetGrowthRate()
	for _, doc := range docs {
		bond, convErr := doc.ToBond()
		if convErr != nil {
			return nil, types.NewInternalServiceError(convErr)
		}
		weight = weight.Add(core.BondWeightAt(bond, growthRate, at))
	}

	globalWeight := globalIndex.Weight
	if !snapshotted {
		globalWeight = core.GlobalWeightAt(globalIndex, growthRate, at)
	}

	return &WeightPublic{
		Address:      address,
		Weight:       weight.String(),
		GlobalWeight: globalWeight.String(),
		Share:        core.Share(weight, globalWeight).String(),
		Timestamp:    at,
		EpochID:      resolvedID,
	}, nil
}

func (s *Services) snapshotForEpoch(ctx context.Context, epochID uint64) (*types.RewardBucket, *types.Error) {
	doc, err := s.DbClient.FindRewardBucket(ctx, epochID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.NotFound, "no reward bucket for epoch",
			)
		}
		return nil, types.NewInternalServiceError(err)
	}
	bucket, convErr := doc.ToRewardBucket()
	if convErr != nil {
		return nil, types.NewInternalServiceError(convErr)
	}
	return &bucket, nil
}

func (s *Services) liveGlobalIndex(ctx context.Context) (*types.GlobalIndex, *types.Error) {
	doc, err := s.DbClient.FindGlobalIndex(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return &types.GlobalIndex{
				BondedAmount: sdkmath.ZeroInt(),
				BondedAssets: types.Coins{},
				Weight:       sdkmath.ZeroInt(),
			}, nil
		}
		return nil, types.NewInternalServiceError(err)
	}
	index, convErr := doc.ToGlobalIndex()
	if convErr != nil {
		return nil, types.NewInternalServiceError(convErr)
	}
	return &index, nil
}
