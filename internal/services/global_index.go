package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// GlobalIndexPublic is the external view of the global bonding index, live
// or snapshotted into a reward bucket.
type GlobalIndexPublic struct {
	BondedAmount string      `json:"bonded_amount"`
	BondedAssets types.Coins `json:"bonded_assets"`
	Weight       string      `json:"weight"`
	LastUpdated  int64       `json:"last_updated"`
	EpochID      uint64      `json:"epoch_id"`
}

func fromGlobalIndex(index types.GlobalIndex) *GlobalIndexPublic {
	return &GlobalIndexPublic{
		BondedAmount: index.BondedAmount.String(),
		BondedAssets: index.BondedAssets,
		Weight:       index.Weight.String(),
		LastUpdated:  index.LastUpdated,
		EpochID:      index.EpochID,
	}
}

// GetGlobalIndex returns the live global index, or the immutable snapshot
// stored in the given epoch's reward bucket.
func (s *Services) GetGlobalIndex(ctx context.Context, epochID *uint64) (*GlobalIndexPublic, *types.Error) {
	if epochID != nil {
		bucket, svcErr := s.snapshotForEpoch(ctx, *epochID)
		if svcErr != nil {
			return nil, svcErr
		}
		return fromGlobalIndex(bucket.GlobalIndex), nil
	}

	index, svcErr := s.liveGlobalIndex(ctx)
	if svcErr != nil {
		log.Ctx(ctx).Error().Msg("failed to load live global index")
		return nil, svcErr
	}
	return fromGlobalIndex(*index), nil
}
