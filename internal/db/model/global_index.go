package model

import (
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

const GlobalIndexDocumentID = "global"

type GlobalIndexDocument struct {
	ID           string         `bson:"_id"`
	BondedAmount string         `bson:"bonded_amount"`
	BondedAssets []CoinDocument `bson:"bonded_assets"`
	Weight       string         `bson:"weight"`
	LastUpdated  int64          `bson:"last_updated"`
	EpochID      uint64         `bson:"epoch_id"`
}

func FromGlobalIndex(g types.GlobalIndex) GlobalIndexDocument {
	return GlobalIndexDocument{
		ID:           GlobalIndexDocumentID,
		BondedAmount: g.BondedAmount.String(),
		BondedAssets: FromCoins(g.BondedAssets),
		Weight:       g.Weight.String(),
		LastUpdated:  g.LastUpdated,
		EpochID:      g.EpochID,
	}
}

func (d GlobalIndexDocument) ToGlobalIndex() (types.GlobalIndex, error) {
	bonded, err := ParseInt(d.BondedAmount)
	if err != nil {
		return types.GlobalIndex{}, err
	}
	weight, err := ParseInt(d.Weight)
	if err != nil {
		return types.GlobalIndex{}, err
	}
	assets, err := ToCoins(d.BondedAssets)
	if err != nil {
		return types.GlobalIndex{}, err
	}
	return types.GlobalIndex{
		BondedAmount: bonded,
		BondedAssets: assets,
		Weight:       weight,
		LastUpdated:  d.LastUpdated,
		EpochID:      d.EpochID,
	}, nil
}
