package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
)

// FindGlobalIndex returns the live global index. A NotFoundError means no
// bond has ever been created.
func (db *Database) FindGlobalIndex(ctx context.Context) (*model.GlobalIndexDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.GlobalIndexCollection)
	var index model.GlobalIndexDocument
	err := client.FindOne(ctx, bson.M{"_id": model.GlobalIndexDocumentID}).Decode(&index)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.GlobalIndexDocumentID,
				Message: "global index not found",
			}
		}
		return nil, err
	}
	return &index, nil
}
