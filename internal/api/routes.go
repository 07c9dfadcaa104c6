package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/lagoonlabs/liquidity-hub-api-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/bond", registerHandler(handlers.Bond))
	r.Post("/v1/unbond", registerHandler(handlers.Unbond))
	r.Post("/v1/withdraw", registerHandler(handlers.Withdraw))
	r.Post("/v1/claim", registerHandler(handlers.Claim))
	r.Post("/v1/epochs", registerHandler(handlers.EpochChanged))
	r.Post("/v1/rewards", registerHandler(handlers.FillRewards))

	r.Get("/v1/config", registerHandler(handlers.GetBondingConfig))
	r.Get("/v1/bonded", registerHandler(handlers.GetBonded))
	r.Get("/v1/unbonding", registerHandler(handlers.GetUnbondings))
	r.Get("/v1/withdrawable", registerHandler(handlers.GetWithdrawable))
	r.Get("/v1/weight", registerHandler(handlers.GetWeight))
	r.Get("/v1/claimable", registerHandler(handlers.GetClaimable))
	r.Get("/v1/global-index", registerHandler(handlers.GetGlobalIndex))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
