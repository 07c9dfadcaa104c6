package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// BondedPublic is the external view of a bonded position summary.
type BondedPublic struct {
	Bonded             types.Coins `json:"bonded"`
	TotalBonded        string      `json:"total_bonded"`
	FirstBondedEpochID *uint64     `json:"first_bonded_epoch_id,omitempty"`
}

// BondedByAddress summarizes the live bonded positions for one address. An
// address with no bonds gets a zero summary, not an error.
func (s *Services) BondedByAddress(ctx context.Context, address string) (*BondedPublic, *types.Error) {
	docs, err := s.DbClient.FindBondsByAddress(ctx, address)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to find bonds by address")
		return nil, types.NewInternalServiceError(err)
	}

	bonded := types.Coins{}
	total := sdkmath.ZeroInt()
	var firstBonded *uint64
	for _, doc := range docs {
		bond, convErr := doc.ToBond()
		if convErr != nil {
			return nil, types.NewInternalServiceError(convErr)
		}
		bonded = bonded.Aggregate(types.NewCoin(bond.Denom, bond.Amount))
		total = total.Add(bond.Amount)
		if firstBonded == nil || bond.CreatedAtEpoch < *firstBonded {
			epoch := bond.CreatedAtEpoch
			firstBonded = &epoch
		}
	}

	return &BondedPublic{
		Bonded:             bonded,
		TotalBonded:        total.String(),
		FirstBondedEpochID: firstBonded,
	}, nil
}

// GlobalBonded summarizes the global index totals across all addresses.
func (s *Services) GlobalBonded(ctx context.Context) (*BondedPublic, *types.Error) {
	doc, err := s.DbClient.FindGlobalIndex(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return &BondedPublic{
				Bonded:      types.Coins{},
				TotalBonded: sdkmath.ZeroInt().String(),
			}, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to find global index")
		return nil, types.NewInternalServiceError(err)
	}

	index, convErr := doc.ToGlobalIndex()
	if convErr != nil {
		return nil, types.NewInternalServiceError(convErr)
	}
	return &BondedPublic{
		Bonded:      index.BondedAssets,
		TotalBonded: index.BondedAmount.String(),
	}, nil
}
