package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

type WithdrawRequestPayload struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
}

func parseWithdrawRequestPayload(request *http.Request) (*WithdrawRequestPayload, *types.Error) {
	payload, err := parseJSONPayload[WithdrawRequestPayload](request)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidAddress(payload.Address) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid address")
	}
	if !utils.IsValidDenom(payload.Denom) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid denom")
	}
	return payload, nil
}

// Withdraw godoc
// @Summary Withdraw matured unbondings
// @Description Releases every matured unbonding entry for (address, denom) and transfers the sum. Withdrawing with nothing matured is a zero-transfer success.
// @Accept json
// @Produce json
// @Param payload body WithdrawRequestPayload true "Withdraw Request Payload"
// @Success 200 {object} PublicResponse[types.Coin] "Withdrawn coin, possibly zero"
// @Failure 400 {object} types.Error "Invalid payload"
// @Router /v1/withdraw [post]
func (h *Handler) Withdraw(request *http.Request) (*Result, *types.Error) {
	payload, err := parseWithdrawRequestPayload(request)
	if err != nil {
		return nil, err
	}

	withdrawn, withdrawErr := h.services.ProcessWithdraw(request.Context(), payload.Address, payload.Denom)
	if withdrawErr != nil {
		return nil, withdrawErr
	}
	return NewResult(withdrawn), nil
}
