package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
)

type Database struct {
	DbName string
	Client *mongo.Client
	cfg    config.DbConfig
}

type DbResultMap[T any] struct {
	Data            []T    `json:"data"`
	PaginationToken string `json:"paginationToken"`
}

func New(ctx context.Context, cfg config.DbConfig) (*Database, error) {
	clientOps := options.Client().ApplyURI(cfg.Address)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return nil, err
	}

	return &Database{
		DbName: cfg.DbName,
		Client: client,
		cfg:    cfg,
	}, nil
}

func replaceUpsert() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}

func (db *Database) Ping(ctx context.Context) error {
	err := db.Client.Ping(ctx, nil)
	if err != nil {
		return err
	}
	return nil
}

// This function is used to build the result map with pagination token.
// It will return the result map with pagination token if the result length
// is equal to the fetch limit, otherwise the pagination token is an empty
// string and the page is the last one.
func toResultMapWithPaginationToken[T any](limit int64, result []T, paginationKeyBuilder func(T) (string, error)) (*DbResultMap[T], error) {
	if len(result) > 0 && len(result) == int(limit) {
		paginationToken, err := paginationKeyBuilder(result[len(result)-1])
		if err != nil {
			return nil, err
		}
		return &DbResultMap[T]{
			Data:            result,
			PaginationToken: paginationToken,
		}, nil
	}

	return &DbResultMap[T]{
		Data:            result,
		PaginationToken: "",
	}, nil
}
