package db

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
)

// WithdrawMaturedUnbondings deletes every unbonding entry for (address,
// denom) that matured at or before now and returns the summed amount. A
// result of zero with no deletions is a valid outcome.
func (db *Database) WithdrawMaturedUnbondings(
	ctx context.Context, address, denom string, now int64,
) (sdkmath.Int, error) {
	unbondingClient := db.Client.Database(db.DbName).Collection(model.UnbondingCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"address":     address,
			"denom":       denom,
			"unbonded_at": bson.M{"$lte": now},
		}

		cursor, err := unbondingClient.Find(sessCtx, filter)
		if err != nil {
			return nil, err
		}
		var matured []model.UnbondingDocument
		if err = cursor.All(sessCtx, &matured); err != nil {
			return nil, err
		}

		total := sdkmath.ZeroInt()
		for _, entry := range matured {
			amount, err := model.ParseInt(entry.Amount)
			if err != nil {
				return nil, err
			}
			total = total.Add(amount)
		}
		if len(matured) > 0 {
			if _, err := unbondingClient.DeleteMany(sessCtx, filter); err != nil {
				return nil, err
			}
		}
		return total, nil
	}

	result, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return result.(sdkmath.Int), nil
}
