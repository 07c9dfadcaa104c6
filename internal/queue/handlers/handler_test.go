package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/clients"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
	queueclient "github.com/lagoonlabs/liquidity-hub-api-service/internal/queue/client"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/services"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
	testmock "github.com/lagoonlabs/liquidity-hub-api-service/tests/mocks"
)

const testEpochManager = "hub1epochmanageraddress"

func setupQueueHandler(t *testing.T) (*QueueHandler, *testmock.DBClient) {
	cfg := &config.Config{
		Bonding: config.BondingConfig{
			BondingAssets:       []string{"ampwhale"},
			RewardDenom:         "uwhale",
			UnbondingPeriod:     24 * time.Hour,
			GracePeriod:         21,
			GrowthRate:          "1",
			EpochManagerAddress: testEpochManager,
		},
	}
	require.NoError(t, cfg.Bonding.Validate())

	mockDB := testmock.NewDBClient(t)
	svc := services.NewWithDeps(cfg, mockDB, &clients.Clients{})
	return NewQueueHandler(svc), mockDB
}

func TestEpochChangedHandler(t *testing.T) {
	handler, mockDB := setupQueueHandler(t)

	epoch := types.Epoch{ID: 7, StartTime: 1_000_000}
	mockDB.On("SaveNewEpoch", mock.Anything, epoch, uint64(21), mock.Anything).Return(nil)

	event := queueclient.NewEpochChangedEvent(testEpochManager, epoch)
	body, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NoError(t, handler.EpochChangedHandler(context.Background(), string(body)))
}

func TestEpochChangedHandlerMalformedBody(t *testing.T) {
	handler, _ := setupQueueHandler(t)

	err := handler.EpochChangedHandler(context.Background(), "not json")
	assert.Error(t, err)
}

func TestEpochChangedHandlerUnauthorizedSender(t *testing.T) {
	handler, mockDB := setupQueueHandler(t)

	event := queueclient.NewEpochChangedEvent("hub1impostor", types.Epoch{ID: 7})
	body, err := json.Marshal(event)
	require.NoError(t, err)

	assert.Error(t, handler.EpochChangedHandler(context.Background(), string(body)))
	mockDB.AssertNotCalled(t, "SaveNewEpoch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFillRewardsHandler(t *testing.T) {
	handler, mockDB := setupQueueHandler(t)

	coins := types.NewCoins(types.NewInt64Coin("uwhale", 500))
	mockDB.On("AddToUpcomingBucket", mock.Anything, coins).Return(nil)

	event := queueclient.NewFillRewardsEvent(coins)
	body, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NoError(t, handler.FillRewardsHandler(context.Background(), string(body)))
}

func TestFillRewardsHandlerMalformedBody(t *testing.T) {
	handler, _ := setupQueueHandler(t)

	err := handler.FillRewardsHandler(context.Background(), "{")
	assert.Error(t, err)
}
