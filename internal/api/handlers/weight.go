package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// GetWeight godoc
// @Summary Get voting weight
// @Description Recomputes the address's weight and global share, live, as of a historical timestamp, or against a specific epoch snapshot. Same math as claim settlement, read-only.
// @Produce json
// @Param address query string true "Bonder address"
// @Param timestamp query int false "Historical unix timestamp in seconds"
// @Param epoch_id query int false "Epoch id whose snapshot to compute against"
// @Success 200 {object} PublicResponse[services.WeightPublic] "Weight and share"
// @Failure 400 {object} types.Error "Invalid parameters"
// @Failure 404 {object} types.Error "No reward bucket for epoch"
// @Router /v1/weight [get]
func (h *Handler) GetWeight(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	timestamp, err := parseInt64Query(request, "timestamp")
	if err != nil {
		return nil, err
	}
	epochID, err := parseUint64Query(request, "epoch_id")
	if err != nil {
		return nil, err
	}
	if timestamp != nil && epochID != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "timestamp and epoch_id are mutually exclusive",
		)
	}

	weight, svcErr := h.services.WeightByAddress(request.Context(), address, timestamp, epochID)
	if svcErr != nil {
		return nil, svcErr
	}
	return NewResult(weight), nil
}
