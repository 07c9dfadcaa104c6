package handlers

import (
	"net/http"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

type FillRewardsRequestPayload struct {
	Coins types.Coins `json:"coins"`
}

func parseFillRewardsRequestPayload(request *http.Request) (*FillRewardsRequestPayload, *types.Error) {
	payload, err := parseJSONPayload[FillRewardsRequestPayload](request)
	if err != nil {
		return nil, err
	}
	if len(payload.Coins) == 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "coins are required")
	}
	for _, coin := range payload.Coins {
		if err := validateCoin(coin); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// FillRewards godoc
// @Summary Fill rewards
// @Description Swaps the given fee coins into the reward denom through the AMM and adds the proceeds to the upcoming reward bucket. Add-only, any sender.
// @Accept json
// @Produce json
// @Param payload body FillRewardsRequestPayload true "Fill Rewards Payload"
// @Success 200 {object} PublicResponse[string] "Rewards collected"
// @Failure 400 {object} types.Error "Invalid payload"
// @Router /v1/rewards [post]
func (h *Handler) FillRewards(request *http.Request) (*Result, *types.Error) {
	payload, err := parseFillRewardsRequestPayload(request)
	if err != nil {
		return nil, err
	}

	if fillErr := h.services.ProcessFillRewards(request.Context(), payload.Coins); fillErr != nil {
		return nil, fillErr
	}
	return NewResult("rewards collected"), nil
}
