package model

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// CoinDocument stores token amounts as decimal strings; mongo has no integer
// type wide enough for token math.
type CoinDocument struct {
	Denom  string `bson:"denom"`
	Amount string `bson:"amount"`
}

func FromCoin(c types.Coin) CoinDocument {
	return CoinDocument{Denom: c.Denom, Amount: c.Amount.String()}
}

func FromCoins(cs types.Coins) []CoinDocument {
	out := make([]CoinDocument, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCoin(c))
	}
	return out
}

func (d CoinDocument) ToCoin() (types.Coin, error) {
	amount, ok := sdkmath.NewIntFromString(d.Amount)
	if !ok {
		return types.Coin{}, fmt.Errorf("invalid amount %q for denom %s", d.Amount, d.Denom)
	}
	return types.NewCoin(d.Denom, amount), nil
}

func ToCoins(docs []CoinDocument) (types.Coins, error) {
	out := types.Coins{}
	for _, d := range docs {
		c, err := d.ToCoin()
		if err != nil {
			return nil, err
		}
		out = out.Aggregate(c)
	}
	return out, nil
}

// ParseInt parses a stored amount string, failing on malformed documents.
func ParseInt(s string) (sdkmath.Int, error) {
	v, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid integer amount: %q", s)
	}
	return v, nil
}
