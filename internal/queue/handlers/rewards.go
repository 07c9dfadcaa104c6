package handlers

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	queueClient "github.com/lagoonlabs/liquidity-hub-api-service/internal/queue/client"
)

// FillRewardsHandler handles the fill rewards event. Filling is add-only,
// so replaying a message at worst double counts the same fee batch; the
// producer is expected to emit each batch once.
func (h *QueueHandler) FillRewardsHandler(ctx context.Context, messageBody string) error {
	var event queueClient.FillRewardsEvent
	err := json.Unmarshal([]byte(messageBody), &event)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into FillRewardsEvent")
		return err
	}

	if svcErr := h.Services.ProcessFillRewards(ctx, event.Coins); svcErr != nil {
		log.Ctx(ctx).Error().Err(svcErr).Msg("Failed to process fill rewards event")
		return svcErr
	}
	return nil
}
