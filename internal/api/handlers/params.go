package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

func parseAddressQuery(request *http.Request, name string) (string, *types.Error) {
	address := request.URL.Query().Get(name)
	if address == "" {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, name+" is required")
	}
	if !utils.IsValidAddress(address) {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid "+name)
	}
	return address, nil
}

func parseDenomQuery(request *http.Request, name string) (string, *types.Error) {
	denom := request.URL.Query().Get(name)
	if denom == "" {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, name+" is required")
	}
	if !utils.IsValidDenom(denom) {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid "+name)
	}
	return denom, nil
}

// parseUint64Query parses an optional uint64 query parameter, nil when absent.
func parseUint64Query(request *http.Request, name string) (*uint64, *types.Error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid "+name)
	}
	return &value, nil
}

// parseInt64Query parses an optional int64 query parameter, nil when absent.
func parseInt64Query(request *http.Request, name string) (*int64, *types.Error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid "+name)
	}
	return &value, nil
}

func parseJSONPayload[T any](request *http.Request) (*T, *types.Error) {
	payload := new(T)
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	return payload, nil
}

func validateCoin(coin types.Coin) *types.Error {
	if !utils.IsValidDenom(coin.Denom) {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid coin denom")
	}
	if coin.Amount.IsNil() || coin.Amount.IsNegative() {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid coin amount")
	}
	return nil
}
