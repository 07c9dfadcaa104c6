package bank

import (
	"context"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// BankClient executes outbound token transfers. Transfers are assumed
// all-or-nothing on the collaborator's side; a returned error means nothing
// moved.
type BankClient interface {
	Transfer(ctx context.Context, recipient string, coins types.Coins) *types.Error
}
