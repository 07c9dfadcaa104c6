package model

import (
	"fmt"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

const UnbondingSequenceCounterID = "unbonding_sequence"

type UnbondingDocument struct {
	// Primary key, "<address>:<denom>:<sequence>"
	ID         string `bson:"_id"`
	Address    string `bson:"address"`
	Denom      string `bson:"denom"`
	Amount     string `bson:"amount"`
	Sequence   uint64 `bson:"sequence"`
	UnbondedAt int64  `bson:"unbonded_at"`
	CreatedAt  int64  `bson:"created_at"`
}

func UnbondingDocumentID(address, denom string, sequence uint64) string {
	return fmt.Sprintf("%s:%s:%020d", address, denom, sequence)
}

func FromUnbond(u types.Unbond) UnbondingDocument {
	return UnbondingDocument{
		ID:         UnbondingDocumentID(u.Address, u.Denom, u.Sequence),
		Address:    u.Address,
		Denom:      u.Denom,
		Amount:     u.Amount.String(),
		Sequence:   u.Sequence,
		UnbondedAt: u.UnbondedAt,
		CreatedAt:  u.CreatedAt,
	}
}

func (d UnbondingDocument) ToUnbond() (types.Unbond, error) {
	amount, err := ParseInt(d.Amount)
	if err != nil {
		return types.Unbond{}, err
	}
	return types.Unbond{
		Address:    d.Address,
		Denom:      d.Denom,
		Amount:     amount,
		Sequence:   d.Sequence,
		UnbondedAt: d.UnbondedAt,
		CreatedAt:  d.CreatedAt,
	}, nil
}

// UnbondingPagination is the cursor for the ascending-by-sequence listing.
type UnbondingPagination struct {
	Sequence uint64 `json:"sequence"`
}

func BuildUnbondingPaginationToken(d UnbondingDocument) (string, error) {
	return GetPaginationToken(UnbondingPagination{Sequence: d.Sequence})
}
