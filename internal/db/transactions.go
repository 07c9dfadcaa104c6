package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

const (
	DefaultMaxAttempts    = 4 // max attempt INCLUDES the first execution
	DefaultInitialBackoff = 100 * time.Millisecond
	DefaultBackoffFactor  = 2.0
)

// DBSession is the subset of mongo.Session used by the retrying wrapper,
// abstracted so that transient failures can be simulated in tests.
type DBSession interface {
	WithTransaction(
		ctx context.Context,
		fn func(sessCtx mongo.SessionContext) (interface{}, error),
		opts ...*options.TransactionOptions,
	) (interface{}, error)
	EndSession(ctx context.Context)
}

type DBTransactionClient interface {
	StartSession(opts ...*options.SessionOptions) (DBSession, error)
}

type dbTransactionClient struct {
	*mongo.Client
}

type dbSessionWrapper struct {
	mongo.Session
}

func (c *dbTransactionClient) StartSession(opts ...*options.SessionOptions) (DBSession, error) {
	session, err := c.Client.StartSession(opts...)
	if err != nil {
		return nil, err
	}
	return &dbSessionWrapper{session}, nil
}

func (s *dbSessionWrapper) EndSession(ctx context.Context) {
	s.Session.EndSession(ctx)
}

func (s *dbSessionWrapper) WithTransaction(ctx context.Context, fn func(sessCtx mongo.SessionContext) (interface{}, error), opts ...*options.TransactionOptions) (interface{}, error) {
	return s.Session.WithTransaction(ctx, fn, opts...)
}

func (db *Database) txClient() DBTransactionClient {
	return &dbTransactionClient{db.Client}
}

// TxWithRetries runs txnFunc in a mongo transaction, retrying transient
// failures (network, timeout, write conflict, transaction aborted) with
// exponential backoff.
func TxWithRetries(
	ctx context.Context,
	client DBTransactionClient,
	txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	var (
		result  interface{}
		err     error
		backoff = DefaultInitialBackoff
	)

	for attempt := 1; attempt <= DefaultMaxAttempts; attempt++ {
		session, sessionErr := client.StartSession()
		if sessionErr != nil {
			return nil, sessionErr
		}

		result, err = session.WithTransaction(ctx, txnFunc)
		session.EndSession(ctx)

		if err != nil {
			if shouldRetry(err) && attempt < DefaultMaxAttempts {
				log.Ctx(ctx).Warn().Err(err).
					Int("attempt", attempt).
					Dur("backoff", backoff).
					Msg("retrying transaction after transient error")
				utils.Sleep(backoff)
				backoff *= time.Duration(DefaultBackoffFactor)
				continue
			}
			return nil, err
		}
		break
	}
	return result, nil
}

// Network-related and timeout errors, write conflicts and aborted
// transactions are transient. Everything else, duplicated keys included,
// is not retried.
func shouldRetry(err error) bool {
	if mongo.IsNetworkError(err) {
		return true
	}
	if mongo.IsTimeout(err) {
		return true
	}
	if IsWriteConflictError(err) {
		return true
	}
	if IsTransactionAbortedError(err) {
		return true
	}
	return false
}
