package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	sdkmath "cosmossdk.io/math"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// UnbondingPublic is the external view of a pending unbonding entry.
type UnbondingPublic struct {
	Denom      string `json:"denom"`
	Amount     string `json:"amount"`
	Sequence   uint64 `json:"sequence"`
	UnbondedAt int64  `json:"unbonded_at"`
	CreatedAt  int64  `json:"created_at"`
}

// ProcessUnbond moves the coin out of the caller's bond into a new
// unbonding entry that matures after the configured unbonding period.
// Like bonding, it refuses to run while the address has claimable rewards.
func (s *Services) ProcessUnbond(ctx context.Context, address string, coin types.Coin) (*UnbondingPublic, *types.Error) {
	if coin.IsZero() {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidUnbondingAmount, "unbonding amount must be positive",
		)
	}
	if claimErr := s.ensureRewardsClaimed(ctx, address); claimErr != nil {
		return nil, claimErr
	}

	epoch, clientErr := s.Clients.EpochManager.CurrentEpoch(ctx)
	if clientErr != nil {
		if clientErr.StatusCode == http.StatusNotFound {
			// No epoch means bonding was never possible, so there is
			// nothing to unbond either.
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.NothingToUnbond, "no bonded position for denom",
			)
		}
		return nil, clientErr
	}

	now := s.now()
	unbondedAt := now + int64(s.cfg.Bonding.UnbondingPeriod.Seconds())
	unbonding, err := s.DbClient.SaveUnbonding(
		ctx, address, coin.Denom, coin.Amount,
		s.cfg.Bonding.GetGrowthRate(), now, unbondedAt, epoch.ID,
	)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.NothingToUnbond, "no bonded position for denom",
			)
		}
		if db.IsInsufficientBondError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.InsufficientBond, err.Error(),
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to save unbonding")
		return nil, types.NewInternalServiceError(err)
	}

	return &UnbondingPublic{
		Denom:      unbonding.Denom,
		Amount:     unbonding.Amount,
		Sequence:   unbonding.Sequence,
		UnbondedAt: unbonding.UnbondedAt,
		CreatedAt:  unbonding.CreatedAt,
	}, nil
}

// UnbondingsByAddress returns one page of pending unbonding entries for
// (address, denom), ascending by sequence, along with the total outstanding
// amount across all entries.
func (s *Services) UnbondingsByAddress(
	ctx context.Context, address, denom, pageToken string, limit int64,
) ([]UnbondingPublic, string, string, *types.Error) {
	resultMap, err := s.DbClient.FindUnbondings(ctx, address, denom, pageToken, limit)
	if err != nil {
		if db.IsInvalidPaginationTokenError(err) {
			log.Ctx(ctx).Warn().Err(err).Msg("invalid pagination token when fetching unbondings")
			return nil, "", "", types.NewError(http.StatusBadRequest, types.BadRequest, err)
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to find unbondings")
		return nil, "", "", types.NewInternalServiceError(err)
	}

	var unbondings []UnbondingPublic
	for _, d := range resultMap.Data {
		unbondings = append(unbondings, UnbondingPublic{
			Denom:      d.Denom,
			Amount:     d.Amount,
			Sequence:   d.Sequence,
			UnbondedAt: d.UnbondedAt,
			CreatedAt:  d.CreatedAt,
		})
	}

	total, totalErr := s.totalUnbonding(ctx, address, denom)
	if totalErr != nil {
		return nil, "", "", totalErr
	}
	return unbondings, total, resultMap.PaginationToken, nil
}

func (s *Services) totalUnbonding(ctx context.Context, address, denom string) (string, *types.Error) {
	all, err := s.DbClient.FindAllUnbondings(ctx, address, denom)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to sum unbondings")
		return "", types.NewInternalServiceError(err)
	}
	total := sdkmath.ZeroInt()
	for _, d := range all {
		amount, parseErr := model.ParseInt(d.Amount)
		if parseErr != nil {
			return "", types.NewInternalServiceError(parseErr)
		}
		total = total.Add(amount)
	}
	return total.String(), nil
}
