package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

type UnbondRequestPayload struct {
	Address string     `json:"address"`
	Coin    types.Coin `json:"coin"`
}

func parseUnbondRequestPayload(request *http.Request) (*UnbondRequestPayload, *types.Error) {
	payload, err := parseJSONPayload[UnbondRequestPayload](request)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidAddress(payload.Address) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid address")
	}
	if err := validateCoin(payload.Coin); err != nil {
		return nil, err
	}
	return payload, nil
}

// Unbond godoc
// @Summary Unbond tokens
// @Description Moves the coin out of the caller's bonded position into an unbonding entry that matures after the unbonding period.
// @Accept json
// @Produce json
// @Param payload body UnbondRequestPayload true "Unbond Request Payload"
// @Success 200 {object} PublicResponse[services.UnbondingPublic] "Created unbonding entry"
// @Failure 400 {object} types.Error "Invalid payload, zero amount, amount exceeds bond or unclaimed rewards"
// @Failure 404 {object} types.Error "No bonded position for denom"
// @Router /v1/unbond [post]
func (h *Handler) Unbond(request *http.Request) (*Result, *types.Error) {
	payload, err := parseUnbondRequestPayload(request)
	if err != nil {
		return nil, err
	}

	unbonding, unbondErr := h.services.ProcessUnbond(request.Context(), payload.Address, payload.Coin)
	if unbondErr != nil {
		return nil, unbondErr
	}
	return NewResult(unbonding), nil
}
