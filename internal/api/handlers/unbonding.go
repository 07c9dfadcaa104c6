package handlers

import (
	"net/http"
	"strconv"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/services"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

const (
	defaultUnbondingPageSize int64 = 10
	maxUnbondingPageSize     int64 = 30
)

type UnbondingListResponse struct {
	Total      string                     `json:"total"`
	Unbondings []services.UnbondingPublic `json:"unbondings"`
}

// GetUnbondings godoc
// @Summary List pending unbondings
// @Description Returns one page of pending unbonding entries for (address, denom), ascending by sequence, plus the total outstanding amount.
// @Produce json
// @Param address query string true "Bonder address"
// @Param denom query string true "Asset denom"
// @Param limit query int false "Page size, default 10, max 30"
// @Param pagination_key query string false "Pagination token from the previous page"
// @Success 200 {object} PublicResponse[UnbondingListResponse] "Unbonding entries"
// @Failure 400 {object} types.Error "Invalid parameters or pagination token"
// @Router /v1/unbonding [get]
func (h *Handler) GetUnbondings(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	denom, err := parseDenomQuery(request, "denom")
	if err != nil {
		return nil, err
	}

	limit := defaultUnbondingPageSize
	if raw := request.URL.Query().Get("limit"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || parsed < 1 {
			return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid limit")
		}
		limit = parsed
		if limit > maxUnbondingPageSize {
			limit = maxUnbondingPageSize
		}
	}
	pageToken := request.URL.Query().Get("pagination_key")

	unbondings, total, nextPageToken, svcErr := h.services.UnbondingsByAddress(
		request.Context(), address, denom, pageToken, limit,
	)
	if svcErr != nil {
		return nil, svcErr
	}

	response := UnbondingListResponse{Total: total, Unbondings: unbondings}
	return NewResultWithPagination(response, nextPageToken), nil
}
