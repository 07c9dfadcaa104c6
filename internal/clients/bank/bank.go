package bank

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/lagoonlabs/liquidity-hub-api-service/internal/clients/base"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

type Bank struct {
	config     *config.ExternalClientConfig
	httpClient *http.Client
}

func NewBankClient(config *config.ExternalClientConfig) *Bank {
	return &Bank{
		config:     config,
		httpClient: &http.Client{},
	}
}

func (c *Bank) GetBaseURL() string {
	return fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)
}

func (c *Bank) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *Bank) GetHttpClient() *http.Client {
	return c.httpClient
}

type transferRequest struct {
	Recipient string      `json:"recipient"`
	Coins     types.Coins `json:"coins"`
}

type transferResponse struct {
	TxID string `json:"tx_id"`
}

func (c *Bank) Transfer(ctx context.Context, recipient string, coins types.Coins) *types.Error {
	opts := &baseclient.BaseClientOptions{
		Path: "/v1/transfers",
	}
	input := &transferRequest{Recipient: recipient, Coins: coins}
	_, err := baseclient.SendRequest[transferRequest, transferResponse](ctx, c, http.MethodPost, opts, input)
	return err
}
