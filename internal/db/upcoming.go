package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// AddToUpcomingBucket merges coins into the upcoming reward accumulator.
// Add-only: amounts only ever grow until the next epoch transition drains
// the accumulator.
func (db *Database) AddToUpcomingBucket(ctx context.Context, coins types.Coins) error {
	upcomingClient := db.Client.Database(db.DbName).Collection(model.UpcomingBucketCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		upcoming, err := db.findUpcomingInSession(sessCtx, upcomingClient)
		if err != nil {
			return nil, err
		}
		total := upcoming.Total.AggregateAll(coins)

		_, err = upcomingClient.ReplaceOne(
			sessCtx, bson.M{"_id": model.UpcomingBucketDocumentID},
			model.UpcomingBucketDocument{
				ID:    model.UpcomingBucketDocumentID,
				Total: model.FromCoins(total),
			},
			replaceUpsert(),
		)
		return nil, err
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

// FindUpcomingBucket returns the upcoming accumulator, empty when no fees
// have been collected since the last epoch transition.
func (db *Database) FindUpcomingBucket(ctx context.Context) (*model.UpcomingBucketDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UpcomingBucketCollection)
	var doc model.UpcomingBucketDocument
	err := client.FindOne(ctx, bson.M{"_id": model.UpcomingBucketDocumentID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &model.UpcomingBucketDocument{
				ID:    model.UpcomingBucketDocumentID,
				Total: []model.CoinDocument{},
			}, nil
		}
		return nil, err
	}
	return &doc, nil
}
