package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/observability/metrics"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/queue/client"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/queue/handlers"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/services"
)

type MessageHandler func(ctx context.Context, messageBody string) error

type Queues struct {
	EpochChangedQueueClient client.QueueClient
	FillRewardsQueueClient  client.QueueClient
	Handlers                *handlers.QueueHandler
	services                *services.Services
	processingTimeout       time.Duration
}

func New(cfg config.QueueConfig, service *services.Services) *Queues {
	epochChangedQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, cfg.EpochChangedQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating EpochChangedQueueClient")
	}
	fillRewardsQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, cfg.FillRewardsQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating FillRewardsQueueClient")
	}
	handlers := handlers.NewQueueHandler(service)
	return &Queues{
		EpochChangedQueueClient: epochChangedQueueClient,
		FillRewardsQueueClient:  fillRewardsQueueClient,
		Handlers:                handlers,
		services:                service,
		processingTimeout:       time.Duration(cfg.QueueProcessingTimeout) * time.Second,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	q.startQueueMessageProcessing(q.EpochChangedQueueClient, q.Handlers.EpochChangedHandler, log.Logger)
	q.startQueueMessageProcessing(q.FillRewardsQueueClient, q.Handlers.FillRewardsHandler, log.Logger)
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	if err := q.EpochChangedQueueClient.Stop(); err != nil {
		log.Error().Err(err).Msg("error while stopping epoch changed queue client")
	}
	if err := q.FillRewardsQueueClient.Stop(); err != nil {
		log.Error().Err(err).Msg("error while stopping fill rewards queue client")
	}
}

// IsConnectionHealthy pings every queue connection.
func (q *Queues) IsConnectionHealthy() error {
	if err := q.EpochChangedQueueClient.Ping(); err != nil {
		return err
	}
	return q.FillRewardsQueueClient.Ping()
}

func (q *Queues) startQueueMessageProcessing(
	queueClient client.QueueClient, handler MessageHandler, logger zerolog.Logger,
) {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Fatal().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
	}

	go func() {
		for message := range messagesChan {
			// For each message, create a new context with a deadline or timeout
			ctx, cancel := context.WithTimeout(context.Background(), q.processingTimeout)
			err := handler(ctx, message.Body)
			if err != nil {
				logger.Error().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error while processing message from queue")
				metrics.RecordQueueMessage(queueClient.GetQueueName(), "error")
				// Route the poison message to the dead-letter collection so
				// it can be replayed, then take it off the queue.
				if saveErr := q.services.SaveUnprocessableMessages(ctx, message.Body, message.Receipt); saveErr != nil {
					logger.Error().Err(saveErr).Str("queueName", queueClient.GetQueueName()).Msg("error while saving unprocessable message")
					cancel()
					continue
				}
			} else {
				metrics.RecordQueueMessage(queueClient.GetQueueName(), "success")
			}

			delErr := queueClient.DeleteMessage(message.Receipt)
			if delErr != nil {
				logger.Error().Err(delErr).Str("queueName", queueClient.GetQueueName()).Msg("error while deleting message from queue")
			}
			cancel()
		}
	}()
}
