package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

type BondRequestPayload struct {
	Address string     `json:"address"`
	Coin    types.Coin `json:"coin"`
}

func parseBondRequestPayload(request *http.Request) (*BondRequestPayload, *types.Error) {
	payload, err := parseJSONPayload[BondRequestPayload](request)
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

// Bond godoc
// @Summary Bond tokens
// @Description Adds the coin to the caller's time-weighted bonded position. Only whitelisted denoms can be bonded, only once the first epoch exists, and only after pending rewards are claimed.
// @Accept json
// @Produce json
// @Param payload body BondRequestPayload true "Bond Request Payload"
// @Success 200 {object} PublicResponse[string] "Bond accepted"
// @Failure 400 {object} types.Error "Invalid payload, denom not bondable, zero amount or unclaimed rewards"
// @Failure 403 {object} types.Error "No epoch exists yet"
// @Router /v1/bond [post]
func (h *Handler) Bond(request *http.Request) (*Result, *types.Error) {
	payload, err := parseBondRequestPayload(request)
	if err != nil {
		return nil, err
	}

	if bondErr := h.services.ProcessBond(request.Context(), payload.Address, payload.Coin); bondErr != nil {
		return nil, bondErr
	}
	return NewResult("bonded"), nil
}
