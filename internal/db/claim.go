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

// ExecuteClaim settles every claimable bucket for the address in one
// transaction: bucket balances move from available to claimed and the
// address's last-claimed high-water mark advances to the newest settled
// epoch. Computation runs against the state read inside the transaction, so
// a concurrent epoch transition or claim forces a clean retry instead of a
// stale payout.
// Returns a NotFoundError when the address has no eligible epochs.
func (db *Database) ExecuteClaim(
	ctx context.Context, address string, gracePeriod uint64, growthRate sdkmath.LegacyDec,
) (*core.ClaimResult, error) {
	bondClient := db.Client.Database(db.DbName).Collection(model.BondCollection)
	bucketClient := db.Client.Database(db.DbName).Collection(model.RewardBucketCollection)
	lastClaimedClient := db.Client.Database(db.DbName).Collection(model.LastClaimedEpochCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		bonds, err := db.findBondsByAddressInSession(sessCtx, bondClient, address)
		if err != nil {
			return nil, err
		}

		var lastClaimed *uint64
		var lastClaimedDoc model.LastClaimedEpochDocument
		err = lastClaimedClient.FindOne(sessCtx, bson.M{"_id": address}).Decode(&lastClaimedDoc)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		if err == nil {
			lastClaimed = &lastClaimedDoc.EpochID
		}

		var firstBonded *uint64
		for _, bond := range bonds {
			if firstBonded == nil || bond.CreatedAtEpoch < *firstBonded {
				epoch := bond.CreatedAtEpoch
				firstBonded = &epoch
			}
		}

		buckets, err := db.findRewardBucketsInSession(sessCtx, bucketClient)
		if err != nil {
			return nil, err
		}
		var currentEpochID uint64
		for _, b := range buckets {
			if b.EpochID > currentEpochID {
				currentEpochID = b.EpochID
			}
		}

		claimable := core.ClaimableEpochs(buckets, currentEpochID, gracePeriod)
		eligible := core.EligibleBuckets(claimable, lastClaimed, firstBonded)
		if len(eligible) == 0 {
			return nil, &NotFoundError{
				Key:     address,
				Message: "no claimable epochs for address",
			}
		}

		result, err := core.ComputeClaim(bonds, eligible, growthRate)
		if err != nil {
			return nil, &InvariantViolationError{Message: err.Error()}
		}

		for _, settlement := range result.Settlements {
			update := bson.M{"$set": bson.M{
				"available": model.FromCoins(settlement.Available),
				"claimed":   model.FromCoins(settlement.Claimed),
			}}
			updateResult, err := bucketClient.UpdateOne(sessCtx, bson.M{"_id": settlement.EpochID}, update)
			if err != nil {
				return nil, err
			}
			if updateResult.MatchedCount == 0 {
				return nil, &NotFoundError{
					Key:     address,
					Message: "reward bucket disappeared during claim settlement",
				}
			}
		}

		_, err = lastClaimedClient.ReplaceOne(
			sessCtx, bson.M{"_id": address},
			model.LastClaimedEpochDocument{ID: address, EpochID: result.LastClaimedEpoch},
			replaceUpsert(),
		)
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	result, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	if err != nil {
		return nil, err
	}
	return result.(*core.ClaimResult), nil
}

// advanceClaimFloorInSession raises the address's last-claimed mark to at
// least epochID inside an open transaction. Bond and unbond call this with
// the current epoch: the in-progress bucket's snapshot predates the position
// change, so that bucket must never become claimable for this address.
func (db *Database) advanceClaimFloorInSession(
	sessCtx mongo.SessionContext, address string, epochID uint64,
) error {
	client := db.Client.Database(db.DbName).Collection(model.LastClaimedEpochCollection)
	_, err := client.UpdateOne(
		sessCtx, bson.M{"_id": address},
		bson.M{"$max": bson.M{"epoch_id": epochID}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (db *Database) FindLastClaimedEpoch(ctx context.Context, address string) (*model.LastClaimedEpochDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.LastClaimedEpochCollection)
	var doc model.LastClaimedEpochDocument
	err := client.FindOne(ctx, bson.M{"_id": address}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     address,
				Message: "address has never claimed",
			}
		}
		return nil, err
	}
	return &doc, nil
}

func (db *Database) findBondsByAddressInSession(
	sessCtx mongo.SessionContext, bondClient *mongo.Collection, address string,
) ([]types.Bond, error) {
	cursor, err := bondClient.Find(sessCtx, bson.M{"address": address})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(sessCtx)

	var docs []model.BondDocument
	if err = cursor.All(sessCtx, &docs); err != nil {
		return nil, err
	}
	bonds := make([]types.Bond, 0, len(docs))
	for _, doc := range docs {
		bond, err := doc.ToBond()
		if err != nil {
			return nil, err
		}
		bonds = append(bonds, bond)
	}
	return bonds, nil
}

func (db *Database) findRewardBucketsInSession(
	sessCtx mongo.SessionContext, bucketClient *mongo.Collection,
) ([]types.RewardBucket, error) {
	cursor, err := bucketClient.Find(sessCtx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(sessCtx)

	var docs []model.RewardBucketDocument
	if err = cursor.All(sessCtx, &docs); err != nil {
		return nil, err
	}
	buckets := make([]types.RewardBucket, 0, len(docs))
	for _, doc := range docs {
		bucket, err := doc.ToRewardBucket()
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}
