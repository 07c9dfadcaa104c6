package db

import (
	"context"
	"errors"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/core"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// SaveNewEpoch runs the epoch transition atomically: the upcoming
// accumulator becomes the new bucket, the bucket falling out of the grace
// window forwards its leftover balance into it, and the live global index
// is rolled forward to the epoch start with the new epoch id. Returns a
// DuplicateKeyError when a bucket for the epoch already exists, which
// callers treat as an idempotent replay.
func (db *Database) SaveNewEpoch(
	ctx context.Context, epoch types.Epoch, gracePeriod uint64, growthRate sdkmath.LegacyDec,
) error {
	bucketClient := db.Client.Database(db.DbName).Collection(model.RewardBucketCollection)
	upcomingClient := db.Client.Database(db.DbName).Collection(model.UpcomingBucketCollection)
	indexClient := db.Client.Database(db.DbName).Collection(model.GlobalIndexCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		upcoming, err := db.findUpcomingInSession(sessCtx, upcomingClient)
		if err != nil {
			return nil, err
		}

		var expiring *types.RewardBucket
		if expiringID, ok := core.ExpiringBucketID(epoch.ID, gracePeriod); ok {
			var doc model.RewardBucketDocument
			err := bucketClient.FindOne(sessCtx, bson.M{"_id": expiringID}).Decode(&doc)
			if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			if err == nil {
				bucket, err := doc.ToRewardBucket()
				if err != nil {
					return nil, err
				}
				expiring = &bucket
			}
		}

		index, err := db.findGlobalIndexInSession(sessCtx, indexClient)
		if err != nil {
			return nil, err
		}

		promotion := core.PromoteUpcoming(*upcoming, expiring, *index, epoch, growthRate)

		if _, err := bucketClient.InsertOne(sessCtx, model.FromRewardBucket(promotion.NewBucket)); err != nil {
			var writeErr mongo.WriteException
			if errors.As(err, &writeErr) {
				for _, e := range writeErr.WriteErrors {
					if mongo.IsDuplicateKeyError(e) {
						return nil, &DuplicateKeyError{
							Key:     model.RewardBucketCollection,
							Message: "reward bucket already exists for epoch",
						}
					}
				}
			}
			return nil, err
		}

		if promotion.ExpiredBucket != nil {
			drained := model.FromRewardBucket(*promotion.ExpiredBucket)
			_, err := bucketClient.ReplaceOne(sessCtx, bson.M{"_id": drained.ID}, drained)
			if err != nil {
				return nil, err
			}
		}

		_, err = upcomingClient.ReplaceOne(
			sessCtx, bson.M{"_id": model.UpcomingBucketDocumentID},
			model.UpcomingBucketDocument{ID: model.UpcomingBucketDocumentID, Total: []model.CoinDocument{}},
			replaceUpsert(),
		)
		if err != nil {
			return nil, err
		}

		// The live index mirrors the snapshot so that post-transition reads
		// start from the epoch boundary.
		_, err = indexClient.ReplaceOne(
			sessCtx, bson.M{"_id": model.GlobalIndexDocumentID},
			model.FromGlobalIndex(promotion.NewBucket.GlobalIndex), replaceUpsert(),
		)
		return nil, err
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

// FindRewardBuckets returns every bucket, newest epoch first.
func (db *Database) FindRewardBuckets(ctx context.Context) ([]model.RewardBucketDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.RewardBucketCollection)

	cursor, err := client.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var buckets []model.RewardBucketDocument
	if err = cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (db *Database) FindRewardBucket(ctx context.Context, epochID uint64) (*model.RewardBucketDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.RewardBucketCollection)
	var bucket model.RewardBucketDocument
	err := client.FindOne(ctx, bson.M{"_id": epochID}).Decode(&bucket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.RewardBucketCollection,
				Message: "reward bucket not found",
			}
		}
		return nil, err
	}
	return &bucket, nil
}

// findUpcomingInSession reads the upcoming accumulator inside an open
// transaction, defaulting to an empty one.
func (db *Database) findUpcomingInSession(
	sessCtx mongo.SessionContext, upcomingClient *mongo.Collection,
) (*types.UpcomingRewardBucket, error) {
	var doc model.UpcomingBucketDocument
	err := upcomingClient.FindOne(sessCtx, bson.M{"_id": model.UpcomingBucketDocumentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &types.UpcomingRewardBucket{Total: types.Coins{}}, nil
		}
		return nil, err
	}
	total, err := model.ToCoins(doc.Total)
	if err != nil {
		return nil, err
	}
	return &types.UpcomingRewardBucket{Total: total}, nil
}
