package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/observability/metrics"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

type ClaimRequestPayload struct {
	Address string `json:"address"`
}

func parseClaimRequestPayload(request *http.Request) (*ClaimRequestPayload, *types.Error) {
	payload, err := parseJSONPayload[ClaimRequestPayload](request)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidAddress(payload.Address) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid address")
	}
	return payload, nil
}

// Claim godoc
// @Summary Claim rewards
// @Description Settles every claimable reward bucket for the address and transfers the aggregate payout. A zero payout with eligible epochs is still a success.
// @Accept json
// @Produce json
// @Param payload body ClaimRequestPayload true "Claim Request Payload"
// @Success 200 {object} PublicResponse[types.Coins] "Paid out rewards, possibly empty"
// @Failure 404 {object} types.Error "No claimable epochs for address"
// @Router /v1/claim [post]
func (h *Handler) Claim(request *http.Request) (*Result, *types.Error) {
	payload, err := parseClaimRequestPayload(request)
	if err != nil {
		return nil, err
	}

	payout, claimErr := h.services.ProcessClaim(request.Context(), payload.Address)
	if claimErr != nil {
		metrics.RecordClaimSettlement("error")
		return nil, claimErr
	}
	metrics.RecordClaimSettlement("success")
	return NewResult(payout), nil
}
