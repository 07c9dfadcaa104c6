package amm

import (
	"context"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// AmmClient swaps collected fee coins into the reward denom. SwapRoute asks
// whether a route exists; ExecuteSwap performs the swap and reports the
// amount received.
type AmmClient interface {
	SwapRoute(ctx context.Context, offerDenom, askDenom string) (*SwapRoute, *types.Error)
	ExecuteSwap(ctx context.Context, offer types.Coin, askDenom string) (*types.Coin, *types.Error)
}

type SwapRoute struct {
	OfferDenom string   `json:"offer_denom"`
	AskDenom   string   `json:"ask_denom"`
	PoolIDs    []string `json:"pool_ids"`
}
