package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/cmd/liquidity-hub-api-service/cli"
	"github.com/lagoonlabs/liquidity-hub-api-service/cmd/liquidity-hub-api-service/scripts"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/api"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/clients"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db/model"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/observability/healthcheck"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/observability/metrics"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/queue"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up liquidity hub db model")
	}

	clientSet := clients.New(cfg)
	services, err := services.New(ctx, cfg, clientSet)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up liquidity hub services layer")
	}

	// Start the event queue processing
	queues := queue.New(cfg.Queue, services)

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		err := scripts.ReplayUnprocessableMessages(ctx, cfg, queues, services.DbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	queues.StartReceivingMessages()

	healthcheck.StartHealthCheckCron(ctx, queues, cfg.Server.HealthCheckInterval)

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up liquidity hub api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting liquidity hub api service")
	}
}
