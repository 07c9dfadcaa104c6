package handlers

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	queueClient "github.com/lagoonlabs/liquidity-hub-api-service/internal/queue/client"
)

// EpochChangedHandler handles the epoch changed event from the epoch
// manager. The underlying service call is idempotent per epoch id, so
// duplicated messages are processed gracefully.
func (h *QueueHandler) EpochChangedHandler(ctx context.Context, messageBody string) error {
	var event queueClient.EpochChangedEvent
	err := json.Unmarshal([]byte(messageBody), &event)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into EpochChangedEvent")
		return err
	}

	if svcErr := h.Services.ProcessEpochChanged(ctx, event.Sender, event.Epoch); svcErr != nil {
		log.Ctx(ctx).Error().Err(svcErr).Uint64("epochId", event.Epoch.ID).Msg("Failed to process epoch changed event")
		return svcErr
	}
	return nil
}
