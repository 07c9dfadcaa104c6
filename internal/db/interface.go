package db

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/core"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

type DBClient interface {
	Ping(ctx context.Context) error
	SaveBond(
		ctx context.Context, address, denom string, amount sdkmath.Int,
		growthRate sdkmath.LegacyDec, now int64, currentEpoch uint64,
	) error
	FindBond(ctx context.Context, address, denom string) (*model.BondDocument, error)
	FindBondsByAddress(ctx context.Context, address string) ([]model.BondDocument, error)
	SaveUnbonding(
		ctx context.Context, address, denom string, amount sdkmath.Int,
		growthRate sdkmath.LegacyDec, now, unbondedAt int64, currentEpoch uint64,
	) (*model.UnbondingDocument, error)
	FindUnbondings(
		ctx context.Context, address, denom, paginationToken string, limit int64,
	) (*DbResultMap[model.UnbondingDocument], error)
	FindAllUnbondings(ctx context.Context, address, denom string) ([]model.UnbondingDocument, error)
	WithdrawMaturedUnbondings(ctx context.Context, address, denom string, now int64) (sdkmath.Int, error)
	FindGlobalIndex(ctx context.Context) (*model.GlobalIndexDocument, error)
	SaveNewEpoch(ctx context.Context, epoch types.Epoch, gracePeriod uint64, growthRate sdkmath.LegacyDec) error
	FindRewardBuckets(ctx context.Context) ([]model.RewardBucketDocument, error)
	FindRewardBucket(ctx context.Context, epochID uint64) (*model.RewardBucketDocument, error)
	AddToUpcomingBucket(ctx context.Context, coins types.Coins) error
	FindUpcomingBucket(ctx context.Context) (*model.UpcomingBucketDocument, error)
	ExecuteClaim(
		ctx context.Context, address string, gracePeriod uint64, growthRate sdkmath.LegacyDec,
	) (*core.ClaimResult, error)
	FindLastClaimedEpoch(ctx context.Context, address string) (*model.LastClaimedEpochDocument, error)
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, receipt interface{}) error
}
