package epochmanager

import (
	"context"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// EpochManagerClient translates between wall-clock time and epoch ids. It is
// the only party that knows the epoch schedule; the bonding service never
// computes epoch boundaries itself.
type EpochManagerClient interface {
	CurrentEpoch(ctx context.Context) (*types.Epoch, *types.Error)
	EpochForTimestamp(ctx context.Context, timestamp int64) (*types.Epoch, *types.Error)
}
