package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

// GetBonded godoc
// @Summary Get bonded positions
// @Description With an address, returns that address's bonded coins, total and first bonded epoch. Without one, returns the global bonded totals.
// @Produce json
// @Param address query string false "Bonder address"
// @Success 200 {object} PublicResponse[services.BondedPublic] "Bonded summary"
// @Failure 400 {object} types.Error "Invalid address"
// @Router /v1/bonded [get]
func (h *Handler) GetBonded(request *http.Request) (*Result, *types.Error) {
	address := request.URL.Query().Get("address")
	if address == "" {
		bonded, err := h.services.GlobalBonded(request.Context())
		if err != nil {
			return nil, err
		}
		return NewResult(bonded), nil
	}

	if !utils.IsValidAddress(address) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid address")
	}
	bonded, err := h.services.BondedByAddress(request.Context(), address)
	if err != nil {
		return nil, err
	}
	return NewResult(bonded), nil
}
