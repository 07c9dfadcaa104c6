package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

// GetClaimable godoc
// @Summary List claimable epochs
// @Description Lists reward buckets inside the grace window with a non-empty available balance. With an address, the list is narrowed to the epochs that address could claim.
// @Produce json
// @Param address query string false "Bonder address"
// @Success 200 {object} PublicResponse[[]services.RewardBucketPublic] "Claimable buckets"
// @Failure 400 {object} types.Error "Invalid address"
// @Router /v1/claimable [get]
func (h *Handler) GetClaimable(request *http.Request) (*Result, *types.Error) {
	address := request.URL.Query().Get("address")
	if address != "" && !utils.IsValidAddress(address) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid address")
	}

	buckets, svcErr := h.services.ClaimableEpochs(request.Context(), address)
	if svcErr != nil {
		return nil, svcErr
	}
	return NewResult(buckets), nil
}
