package model

import (
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

type BondDocument struct {
	// Primary key, "<address>:<denom>"
	ID             string `bson:"_id"`
	Address        string `bson:"address"`
	Denom          string `bson:"denom"`
	Amount         string `bson:"amount"`
	Weight         string `bson:"weight"`
	LastUpdated    int64  `bson:"last_updated"`
	CreatedAtEpoch uint64 `bson:"created_at_epoch"`
}

func BondDocumentID(address, denom string) string {
	return address + ":" + denom
}

func FromBond(b types.Bond) BondDocument {
	return BondDocument{
		ID:             BondDocumentID(b.Address, b.Denom),
		Address:        b.Address,
		Denom:          b.Denom,
		Amount:         b.Amount.String(),
		Weight:         b.Weight.String(),
		LastUpdated:    b.LastUpdated,
		CreatedAtEpoch: b.CreatedAtEpoch,
	}
}

func (d BondDocument) ToBond() (types.Bond, error) {
	amount, err := ParseInt(d.Amount)
	if err != nil {
		return types.Bond{}, err
	}
	weight, err := ParseInt(d.Weight)
	if err != nil {
		return types.Bond{}, err
	}
	return types.Bond{
		Address:        d.Address,
		Denom:          d.Denom,
		Amount:         amount,
		Weight:         weight,
		LastUpdated:    d.LastUpdated,
		CreatedAtEpoch: d.CreatedAtEpoch,
	}, nil
}
