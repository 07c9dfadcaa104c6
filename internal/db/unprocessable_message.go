package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
)

func (db *Database) SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error {
	unprocessableMsgClient := db.Client.Database(db.DbName).Collection(model.UnprocessableMsgCollection)

	_, err := unprocessableMsgClient.InsertOne(ctx, model.NewUnprocessableMessageDocument(messageBody, receipt))
	if err != nil {
		return err
	}

	return nil
}

func (db *Database) FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnprocessableMsgCollection)

	cursor, err := client.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var unprocessableMessages []model.UnprocessableMessageDocument
	if err = cursor.All(ctx, &unprocessableMessages); err != nil {
		return nil, err
	}

	return unprocessableMessages, nil
}

func (db *Database) DeleteUnprocessableMessage(ctx context.Context, receipt interface{}) error {
	unprocessableMsgClient := db.Client.Database(db.DbName).Collection(model.UnprocessableMsgCollection)
	filter := bson.M{"receipt": receipt}
	_, err := unprocessableMsgClient.DeleteOne(ctx, filter)
	return err
}
