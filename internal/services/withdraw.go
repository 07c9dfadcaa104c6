package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// ProcessWithdraw releases every matured unbonding entry for (address,
// denom) and transfers the summed amount to the address. Withdrawing with
// nothing matured is a zero-transfer success, not an error.
func (s *Services) ProcessWithdraw(ctx context.Context, address, denom string) (*types.Coin, *types.Error) {
	amount, err := s.DbClient.WithdrawMaturedUnbondings(ctx, address, denom, s.now())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to withdraw matured unbondings")
		return nil, types.NewInternalServiceError(err)
	}

	withdrawn := types.NewCoin(denom, amount)
	if amount.IsZero() {
		return &withdrawn, nil
	}

	if transferErr := s.Clients.Bank.Transfer(ctx, address, types.NewCoins(withdrawn)); transferErr != nil {
		log.Ctx(ctx).Error().
			Str("address", address).
			Str("coin", withdrawn.String()).
			Msg("bank transfer failed after unbonding release")
		return nil, transferErr
	}
	return &withdrawn, nil
}

// WithdrawableAmount sums the unbonding entries for (address, denom) that
// have matured as of now, without mutating anything.
func (s *Services) WithdrawableAmount(ctx context.Context, address, denom string) (*types.Coin, *types.Error) {
	all, err := s.DbClient.FindAllUnbondings(ctx, address, denom)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to find unbondings for withdrawable query")
		return nil, types.NewInternalServiceError(err)
	}

	now := s.now()
	total := sdkmath.ZeroInt()
	for _, d := range all {
		if d.UnbondedAt > now {
			continue
		}
		amount, parseErr := model.ParseInt(d.Amount)
		if parseErr != nil {
			return nil, types.NewInternalServiceError(parseErr)
		}
		total = total.Add(amount)
	}
	coin := types.NewCoin(denom, total)
	return &coin, nil
}
