package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// ProcessEpochChanged runs the epoch transition: the upcoming reward
// accumulator is promoted into a bucket for the new epoch and the bucket
// falling out of the grace window forwards its leftover balance. Only the
// configured epoch manager may call this. The method tolerates duplicated
// calls, only the first call per epoch id is processed.
func (s *Services) ProcessEpochChanged(ctx context.Context, sender string, epoch types.Epoch) *types.Error {
	if sender != s.cfg.Bonding.EpochManagerAddress {
		log.Ctx(ctx).Warn().Str("sender", sender).Msg("epoch changed hook called by non-epoch-manager")
		return types.NewErrorWithMsg(
			http.StatusForbidden, types.Unauthorized, "only the epoch manager may signal epoch changes",
		)
	}

	err := s.DbClient.SaveNewEpoch(ctx, epoch, s.cfg.Bonding.GracePeriod, s.cfg.Bonding.GetGrowthRate())
	if err != nil {
		if db.IsDuplicateKeyError(err) {
			log.Ctx(ctx).Warn().Uint64("epochId", epoch.ID).Msg("skip epoch changed event as the bucket already exists")
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Uint64("epochId", epoch.ID).Msg("failed to process epoch change")
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Uint64("epochId", epoch.ID).Msg("reward bucket created for new epoch")
	return nil
}
