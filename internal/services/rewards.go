package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// ProcessFillRewards converts the given fee coins into the reward denom and
// adds the proceeds to the upcoming reward accumulator. Coins already in the
// reward denom are added as-is; everything else is swapped through the AMM.
// Add-only and safe to call repeatedly.
func (s *Services) ProcessFillRewards(ctx context.Context, coins types.Coins) *types.Error {
	rewardDenom := s.cfg.Bonding.RewardDenom

	collected := types.Coins{}
	for _, coin := range coins {
		if coin.IsZero() {
			continue
		}
		if coin.Denom == rewardDenom {
			collected = collected.Aggregate(coin)
			continue
		}

		if _, err := s.Clients.Amm.SwapRoute(ctx, coin.Denom, rewardDenom); err != nil {
			log.Ctx(ctx).Error().Str("denom", coin.Denom).Msg("no swap route for collected fee")
			return err
		}
		received, err := s.Clients.Amm.ExecuteSwap(ctx, coin, rewardDenom)
		if err != nil {
			log.Ctx(ctx).Error().Str("coin", coin.String()).Msg("swap execution failed")
			return err
		}
		collected = collected.Aggregate(*received)
	}

	if collected.IsZero() {
		return nil
	}

	if err := s.DbClient.AddToUpcomingBucket(ctx, collected); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to add rewards to upcoming bucket")
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().Str("rewards", collected.String()).Msg("rewards added to upcoming bucket")
	return nil
}
