package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

// GetBondingConfig godoc
// @Summary Get bonding configuration
// @Description Retrieves the bonding parameters: bondable denoms, reward denom, unbonding period, grace period and growth rate.
// @Produce json
// @Success 200 {object} PublicResponse[services.BondingConfigPublic] "Bonding configuration"
// @Router /v1/config [get]
func (h *Handler) GetBondingConfig(request *http.Request) (*Result, *types.Error) {
	cfg := h.services.GetBondingConfig()
	return NewResult(cfg), nil
}
