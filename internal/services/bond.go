package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// ProcessBond adds the coin to the caller's bonded position. Bonding is only
// allowed once the first epoch exists: the epoch manager is the authority on
// that, so a missing current epoch rejects the call. Pending rewards must be
// claimed first, so that every still-claimable bucket settles against the
// position its snapshot priced.
func (s *Services) ProcessBond(ctx context.Context, address string, coin types.Coin) *types.Error {
	if !s.cfg.Bonding.IsBondingAsset(coin.Denom) {
		log.Ctx(ctx).Warn().Str("denom", coin.Denom).Msg("attempt to bond a non-whitelisted asset")
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidBondingAsset, "asset cannot be bonded",
		)
	}
	if coin.IsZero() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidZeroAmount, "bonding amount must be positive",
		)
	}
	if claimErr := s.ensureRewardsClaimed(ctx, address); claimErr != nil {
		return claimErr
	}

	epoch, clientErr := s.Clients.EpochManager.CurrentEpoch(ctx)
	if clientErr != nil {
		if clientErr.StatusCode == http.StatusNotFound {
			return types.NewErrorWithMsg(
				http.StatusForbidden, types.Unauthorized, "bonding is not allowed before the first epoch",
			)
		}
		return clientErr
	}

	err := s.DbClient.SaveBond(
		ctx, address, coin.Denom, coin.Amount,
		s.cfg.Bonding.GetGrowthRate(), s.now(), epoch.ID,
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to save bond")
		return types.NewInternalServiceError(err)
	}
	return nil
}
