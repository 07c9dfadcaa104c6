package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

type EpochChangedRequestPayload struct {
	Sender string      `json:"sender"`
	Epoch  types.Epoch `json:"epoch"`
}

func parseEpochChangedRequestPayload(request *http.Request) (*EpochChangedRequestPayload, *types.Error) {
	payload, err := parseJSONPayload[EpochChangedRequestPayload](request)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidAddress(payload.Sender) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid sender")
	}
	if payload.Epoch.ID == 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid epoch id")
	}
	if payload.Epoch.StartTime <= 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid epoch start time")
	}
	return payload, nil
}

// EpochChanged godoc
// @Summary Epoch changed hook
// @Description Promotes the upcoming reward accumulator into a bucket for the new epoch and forwards the bucket leaving the grace window. Only the configured epoch manager may call this; duplicated calls per epoch id are no-ops.
// @Accept json
// @Produce json
// @Param payload body EpochChangedRequestPayload true "Epoch Changed Payload"
// @Success 200 {object} PublicResponse[string] "Epoch processed"
// @Failure 403 {object} types.Error "Sender is not the epoch manager"
// @Router /v1/epochs [post]
func (h *Handler) EpochChanged(request *http.Request) (*Result, *types.Error) {
	payload, err := parseEpochChangedRequestPayload(request)
	if err != nil {
		return nil, err
	}

	if epochErr := h.services.ProcessEpochChanged(request.Context(), payload.Sender, payload.Epoch); epochErr != nil {
		return nil, epochErr
	}
	return NewResult("epoch processed"), nil
}
