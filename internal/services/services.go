package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/clients"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// Service layer contains the business logic and is used to interact with
// the database and the collaborator service clients.
type Services struct {
	DbClient db.DBClient
	Clients  *clients.Clients
	cfg      *config.Config
	clock    func() time.Time
}

func New(ctx context.Context, cfg *config.Config, clientSet *clients.Clients) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return NewWithDeps(cfg, dbClient, clientSet), nil
}

// NewWithDeps wires a service layer from preconstructed dependencies, used
// by tests to inject mocks.
func NewWithDeps(cfg *config.Config, dbClient db.DBClient, clientSet *clients.Clients) *Services {
	return &Services{
		DbClient: dbClient,
		Clients:  clientSet,
		cfg:      cfg,
		clock:    time.Now,
	}
}

// SetClock overrides the service clock, for tests only.
func (s *Services) SetClock(clock func() time.Time) {
	s.clock = clock
}

func (s *Services) now() int64 {
	return s.clock().Unix()
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

func (s *Services) SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) error {
	err := s.DbClient.SaveUnprocessableMessage(ctx, messageBody, receipt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable message")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable message")
	}
	return nil
}
