package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/db"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/types"
)

func TestProcessEpochChanged(t *testing.T) {
	services, deps := setupTestServices(t)

	epoch := types.Epoch{ID: 9, StartTime: 1_000_000}
	deps.db.On("SaveNewEpoch", mock.Anything, epoch, uint64(21), mock.Anything).Return(nil)

	err := services.ProcessEpochChanged(context.Background(), testEpochManager, epoch)
	assert.Nil(t, err)
}

func TestProcessEpochChangedRejectsUnknownSender(t *testing.T) {
	services, deps := setupTestServices(t)

	err := services.ProcessEpochChanged(context.Background(), "hub1impostor", types.Epoch{ID: 9})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.Unauthorized, err.ErrorCode)
	deps.db.AssertNotCalled(t, "SaveNewEpoch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessEpochChangedDuplicateIsNoOp(t *testing.T) {
	services, deps := setupTestServices(t)

	epoch := types.Epoch{ID: 9, StartTime: 1_000_000}
	deps.db.On("SaveNewEpoch", mock.Anything, epoch, uint64(21), mock.Anything).
		Return(&db.DuplicateKeyError{Key: "9", Message: "bucket exists"})

	// replaying the same epoch event must not error
	err := services.ProcessEpochChanged(context.Background(), testEpochManager, epoch)
	assert.Nil(t, err)
}

func TestProcessEpochChangedDbFailure(t *testing.T) {
	services, deps := setupTestServices(t)

	epoch := types.Epoch{ID: 9}
	deps.db.On("SaveNewEpoch", mock.Anything, epoch, uint64(21), mock.Anything).
		Return(errors.New("connection reset"))

	err := services.ProcessEpochChanged(context.Background(), testEpochManager, epoch)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}
