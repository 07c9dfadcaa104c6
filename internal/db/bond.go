package db

import (
	"context"
	"errors"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/core"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// SaveBond adds amount to the (address, denom) position, creating it if
// absent. The position's weight and the global index are accrued to now
// before the amount changes, and both writes commit in the same transaction
// so readers never observe one without the other. The address's claim floor
// advances to currentEpoch in the same transaction: the current bucket's
// snapshot predates this change and cannot settle the new position.
func (db *Database) SaveBond(
	ctx context.Context, address, denom string, amount sdkmath.Int,
	growthRate sdkmath.LegacyDec, now int64, currentEpoch uint64,
) error {
	bondClient := db.Client.Database(db.DbName).Collection(model.BondCollection)
	indexClient := db.Client.Database(db.DbName).Collection(model.GlobalIndexCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		bond, err := db.findBondInSession(sessCtx, bondClient, address, denom)
		if err != nil && !IsNotFoundError(err) {
			return nil, err
		}
		if bond == nil {
			bond = &types.Bond{
				Address:        address,
				Denom:          denom,
				Amount:         sdkmath.ZeroInt(),
				Weight:         sdkmath.ZeroInt(),
				LastUpdated:    now,
				CreatedAtEpoch: currentEpoch,
			}
		}
		bond.Weight = core.AccrueWeight(bond.Weight, bond.Amount, growthRate, bond.LastUpdated, now)
		bond.Amount = bond.Amount.Add(amount)
		bond.LastUpdated = now

		doc := model.FromBond(*bond)
		_, err = bondClient.ReplaceOne(
			sessCtx, bson.M{"_id": doc.ID}, doc, replaceUpsert(),
		)
		if err != nil {
			return nil, err
		}

		index, err := db.findGlobalIndexInSession(sessCtx, indexClient)
		if err != nil {
			return nil, err
		}
		index.Weight = core.AccrueWeight(index.Weight, index.BondedAmount, growthRate, index.LastUpdated, now)
		index.BondedAmount = index.BondedAmount.Add(amount)
		index.BondedAssets = index.BondedAssets.Aggregate(types.Coin{Denom: denom, Amount: amount})
		index.LastUpdated = now

		_, err = indexClient.ReplaceOne(
			sessCtx, bson.M{"_id": model.GlobalIndexDocumentID},
			model.FromGlobalIndex(*index), replaceUpsert(),
		)
		if err != nil {
			return nil, err
		}
		return nil, db.advanceClaimFloorInSession(sessCtx, address, currentEpoch)
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

func (db *Database) FindBond(ctx context.Context, address, denom string) (*model.BondDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.BondCollection)
	filter := bson.M{"_id": model.BondDocumentID(address, denom)}
	var bond model.BondDocument
	err := client.FindOne(ctx, filter).Decode(&bond)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.BondDocumentID(address, denom),
				Message: "bond not found",
			}
		}
		return nil, err
	}
	return &bond, nil
}

func (db *Database) FindBondsByAddress(ctx context.Context, address string) ([]model.BondDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.BondCollection)
	cursor, err := client.Find(ctx, bson.M{"address": address})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bonds []model.BondDocument
	if err = cursor.All(ctx, &bonds); err != nil {
		return nil, err
	}
	return bonds, nil
}

// findBondInSession reads a bond inside an open transaction and converts it
// to its domain form.
func (db *Database) findBondInSession(
	sessCtx mongo.SessionContext, bondClient *mongo.Collection, address, denom string,
) (*types.Bond, error) {
	var doc model.BondDocument
	err := bondClient.FindOne(sessCtx, bson.M{"_id": model.BondDocumentID(address, denom)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.BondDocumentID(address, denom),
				Message: "bond not found",
			}
		}
		return nil, err
	}
	bond, err := doc.ToBond()
	if err != nil {
		return nil, err
	}
	return &bond, nil
}

// findGlobalIndexInSession reads the global index inside an open transaction,
// returning the zero index when no bond has ever been created.
func (db *Database) findGlobalIndexInSession(
	sessCtx mongo.SessionContext, indexClient *mongo.Collection,
) (*types.GlobalIndex, error) {
	var doc model.GlobalIndexDocument
	err := indexClient.FindOne(sessCtx, bson.M{"_id": model.GlobalIndexDocumentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			zero := types.GlobalIndex{
				BondedAmount: sdkmath.ZeroInt(),
				BondedAssets: types.Coins{},
				Weight:       sdkmath.ZeroInt(),
			}
			return &zero, nil
		}
		return nil, err
	}
	index, err := doc.ToGlobalIndex()
	if err != nil {
		return nil, err
	}
	return &index, nil
}
