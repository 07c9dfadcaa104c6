package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// GetGlobalIndex godoc
// @Summary Get global index
// @Description Returns the live global bonding index, or the immutable snapshot stored in the given epoch's reward bucket.
// @Produce json
// @Param epoch_id query int false "Epoch id whose snapshot to return"
// @Success 200 {object} PublicResponse[services.GlobalIndexPublic] "Global index"
// @Failure 404 {object} types.Error "No reward bucket for epoch"
// @Router /v1/global-index [get]
func (h *Handler) GetGlobalIndex(request *http.Request) (*Result, *types.Error) {
	epochID, err := parseUint64Query(request, "epoch_id")
	if err != nil {
		return nil, err
	}

	index, svcErr := h.services.GetGlobalIndex(request.Context(), epochID)
	if svcErr != nil {
		return nil, svcErr
	}
	return NewResult(index), nil
}
