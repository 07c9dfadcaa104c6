package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// GetWithdrawable godoc
// @Summary Get withdrawable amount
// @Description Sums the unbonding entries for (address, denom) that have matured as of now, without mutating anything.
// @Produce json
// @Param address query string true "Bonder address"
// @Param denom query string true "Asset denom"
// @Success 200 {object} PublicResponse[types.Coin] "Withdrawable coin, possibly zero"
// @Failure 400 {object} types.Error "Invalid parameters"
// @Router /v1/withdrawable [get]
func (h *Handler) GetWithdrawable(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	denom, err := parseDenomQuery(request, "denom")
	if err != nil {
		return nil, err
	}

	withdrawable, svcErr := h.services.WithdrawableAmount(request.Context(), address, denom)
	if svcErr != nil {
		return nil, svcErr
	}
	return NewResult(withdrawable), nil
}
