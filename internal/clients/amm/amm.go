package amm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	baseclient "github.com/lagoonlabs/liquidity-hub-api-service/internal/clients/base"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

type Amm struct {
	config     *config.ExternalClientConfig
	httpClient *http.Client
}

func NewAmmClient(config *config.ExternalClientConfig) *Amm {
	return &Amm{
		config:     config,
		httpClient: &http.Client{},
	}
}

func (c *Amm) GetBaseURL() string {
	return fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)
}

func (c *Amm) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *Amm) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Amm) SwapRoute(ctx context.Context, offerDenom, askDenom string) (*SwapRoute, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: fmt.Sprintf(
			"/v1/swap/route?offer_denom=%s&ask_denom=%s",
			url.QueryEscape(offerDenom), url.QueryEscape(askDenom),
		),
	}
	return baseclient.SendRequest[any, SwapRoute](ctx, c, http.MethodGet, opts, nil)
}

type swapRequest struct {
	Offer    types.Coin `json:"offer"`
	AskDenom string     `json:"ask_denom"`
}

type swapResponse struct {
	Received types.Coin `json:"received"`
}

func (c *Amm) ExecuteSwap(ctx context.Context, offer types.Coin, askDenom string) (*types.Coin, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: "/v1/swap",
	}
	input := &swapRequest{Offer: offer, AskDenom: askDenom}
	resp, err := baseclient.SendRequest[swapRequest, swapResponse](ctx, c, http.MethodPost, opts, input)
	if err != nil {
		return nil, err
	}
	return &resp.Received, nil
}
