package handlers

import (
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/services"
)

type QueueHandler struct {
	Services *services.Services
}

func NewQueueHandler(services *services.Services) *QueueHandler {
	return &QueueHandler{
		Services: services,
	}
}
