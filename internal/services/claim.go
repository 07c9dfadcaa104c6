package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// ProcessClaim settles every claimable reward bucket for the address and
// transfers the aggregate payout. A successful claim with a zero payout is
// still a success; only an empty eligible set is an error.
func (s *Services) ProcessClaim(ctx context.Context, address string) (types.Coins, *types.Error) {
	result, err := s.DbClient.ExecuteClaim(
		ctx, address, s.cfg.Bonding.GracePeriod, s.cfg.Bonding.GetGrowthRate(),
	)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.NothingToClaim, "no claimable epochs for address",
			)
		}
		if db.IsInvariantViolationError(err) {
			log.Ctx(ctx).Error().Err(err).Str("address", address).Msg("claim settlement broke a bucket invariant")
			return nil, types.NewErrorWithMsg(
				http.StatusInternalServerError, types.InvalidShare, "reward accounting invariant violated",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to execute claim")
		return nil, types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().
		Str("address", address).
		Str("payout", result.Payout.String()).
		Uint64("lastClaimedEpoch", result.LastClaimedEpoch).
		Int("bucketsSettled", len(result.Settlements)).
		Msg("claim settled")

	if !result.Payout.IsZero() {
		if transferErr := s.Clients.Bank.Transfer(ctx, address, result.Payout); transferErr != nil {
			log.Ctx(ctx).Error().
				Str("address", address).
				Str("payout", result.Payout.String()).
				Msg("bank transfer failed after claim settlement")
			return nil, transferErr
		}
	}
	return result.Payout, nil
}
