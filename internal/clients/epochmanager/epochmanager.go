package epochmanager

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/lagoonlabs/liquidity-hub-api-service/internal/clients/base"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

type EpochManager struct {
	config     *config.ExternalClientConfig
	httpClient *http.Client
}

func NewEpochManagerClient(config *config.ExternalClientConfig) *EpochManager {
	return &EpochManager{
		config:     config,
		httpClient: &http.Client{},
	}
}

func (c *EpochManager) GetBaseURL() string {
	return fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)
}

func (c *EpochManager) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *EpochManager) GetHttpClient() *http.Client {
	return c.httpClient
}

type epochResponse struct {
	Epoch types.Epoch `json:"epoch"`
}

func (c *EpochManager) CurrentEpoch(ctx context.Context) (*types.Epoch, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: "/v1/epochs/current",
	}
	resp, err := baseclient.SendRequest[any, epochResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Epoch, nil
}

func (c *EpochManager) EpochForTimestamp(ctx context.Context, timestamp int64) (*types.Epoch, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: fmt.Sprintf("/v1/epochs?timestamp=%d", timestamp),
	}
	resp, err := baseclient.SendRequest[any, epochResponse](ctx, c, http.MethodGet, opts, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Epoch, nil
}
