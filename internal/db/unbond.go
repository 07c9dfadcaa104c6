package db

import (
	"context"
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/core"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// SaveUnbonding moves amount out of the (address, denom) bond into a new
// unbonding entry that matures at unbondedAt. The bond's accrued weight is
// slashed in proportion to the amount leaving and the global index mirrors
// both decrements in the same transaction. The bond is deleted when its
// amount reaches zero. The address's claim floor advances to currentEpoch,
// same as SaveBond.
// Returns a NotFoundError when no bond exists and an InsufficientBondError
// when amount exceeds the bonded amount.
func (db *Database) SaveUnbonding(
	ctx context.Context, address, denom string, amount sdkmath.Int,
	growthRate sdkmath.LegacyDec, now, unbondedAt int64, currentEpoch uint64,
) (*model.UnbondingDocument, error) {
	bondClient := db.Client.Database(db.DbName).Collection(model.BondCollection)
	unbondingClient := db.Client.Database(db.DbName).Collection(model.UnbondingCollection)
	indexClient := db.Client.Database(db.DbName).Collection(model.GlobalIndexCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		bond, err := db.findBondInSession(sessCtx, bondClient, address, denom)
		if err != nil {
			return nil, err
		}
		if amount.GT(bond.Amount) {
			return nil, &InsufficientBondError{
				Key: model.BondDocumentID(address, denom),
				Message: fmt.Sprintf(
					"unbonding amount %s exceeds bonded amount %s",
					amount.String(), bond.Amount.String(),
				),
			}
		}

		bond.Weight = core.AccrueWeight(bond.Weight, bond.Amount, growthRate, bond.LastUpdated, now)
		weightSlash := core.SlashWeight(bond.Weight, amount, bond.Amount)
		bond.Weight = bond.Weight.Sub(weightSlash)
		bond.Amount = bond.Amount.Sub(amount)
		bond.LastUpdated = now

		bondID := model.BondDocumentID(address, denom)
		if bond.Amount.IsZero() {
			if _, err := bondClient.DeleteOne(sessCtx, bson.M{"_id": bondID}); err != nil {
				return nil, err
			}
		} else {
			doc := model.FromBond(*bond)
			if _, err := bondClient.ReplaceOne(sessCtx, bson.M{"_id": bondID}, doc); err != nil {
				return nil, err
			}
		}

		sequence, err := db.nextSequence(sessCtx, model.UnbondingSequenceCounterID)
		if err != nil {
			return nil, err
		}
		unbonding := model.FromUnbond(types.Unbond{
			Address:    address,
			Denom:      denom,
			Amount:     amount,
			Sequence:   sequence,
			UnbondedAt: unbondedAt,
			CreatedAt:  now,
		})
		if _, err := unbondingClient.InsertOne(sessCtx, unbonding); err != nil {
			var writeErr mongo.WriteException
			if errors.As(err, &writeErr) {
				for _, e := range writeErr.WriteErrors {
					if mongo.IsDuplicateKeyError(e) {
						return nil, &DuplicateKeyError{
							Key:     unbonding.ID,
							Message: "unbonding entry already exists",
						}
					}
				}
			}
			return nil, err
		}

		index, err := db.findGlobalIndexInSession(sessCtx, indexClient)
		if err != nil {
			return nil, err
		}
		index.Weight = core.AccrueWeight(index.Weight, index.BondedAmount, growthRate, index.LastUpdated, now)
		index.Weight = index.Weight.Sub(weightSlash)
		index.BondedAmount = index.BondedAmount.Sub(amount)
		assets, err := index.BondedAssets.Subtract(types.Coin{Denom: denom, Amount: amount})
		if err != nil {
			return nil, &InvariantViolationError{
				Message: fmt.Sprintf("global index assets out of sync: %v", err),
			}
		}
		index.BondedAssets = assets
		index.LastUpdated = now

		_, err = indexClient.ReplaceOne(
			sessCtx, bson.M{"_id": model.GlobalIndexDocumentID},
			model.FromGlobalIndex(*index), replaceUpsert(),
		)
		if err != nil {
			return nil, err
		}
		if err := db.advanceClaimFloorInSession(sessCtx, address, currentEpoch); err != nil {
			return nil, err
		}
		return &unbonding, nil
	}

	result, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	if err != nil {
		return nil, err
	}
	return result.(*model.UnbondingDocument), nil
}

// FindUnbondings returns one ascending-by-sequence page of unbonding entries
// for (address, denom).
func (db *Database) FindUnbondings(
	ctx context.Context, address, denom, paginationToken string, limit int64,
) (*DbResultMap[model.UnbondingDocument], error) {
	client := db.Client.Database(db.DbName).Collection(model.UnbondingCollection)

	filter := bson.M{"address": address, "denom": denom}
	opts := options.Find().SetSort(bson.M{"sequence": 1}).SetLimit(limit)
	if paginationToken != "" {
		decodedToken, err := model.DecodePaginationToken[model.UnbondingPagination](paginationToken)
		if err != nil {
			return nil, &InvalidPaginationTokenError{
				Message: "Invalid pagination token",
			}
		}
		filter["sequence"] = bson.M{"$gt": decodedToken.Sequence}
	}

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var unbondings []model.UnbondingDocument
	if err = cursor.All(ctx, &unbondings); err != nil {
		return nil, err
	}

	return toResultMapWithPaginationToken(limit, unbondings, model.BuildUnbondingPaginationToken)
}

// FindAllUnbondings returns every unbonding entry for (address, denom),
// used for outstanding and withdrawable totals.
func (db *Database) FindAllUnbondings(ctx context.Context, address, denom string) ([]model.UnbondingDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnbondingCollection)

	cursor, err := client.Find(
		ctx, bson.M{"address": address, "denom": denom},
		options.Find().SetSort(bson.M{"sequence": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var unbondings []model.UnbondingDocument
	if err = cursor.All(ctx, &unbondings); err != nil {
		return nil, err
	}
	return unbondings, nil
}

// nextSequence allocates the next value of a named monotonic counter inside
// an open transaction.
func (db *Database) nextSequence(sessCtx mongo.SessionContext, counterID string) (uint64, error) {
	counterClient := db.Client.Database(db.DbName).Collection(model.CounterCollection)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var counter model.CounterDocument
	err := counterClient.FindOneAndUpdate(
		sessCtx,
		bson.M{"_id": counterID},
		bson.M{"$inc": bson.M{"sequence": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Sequence, nil
}
