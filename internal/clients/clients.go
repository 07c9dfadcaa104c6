package clients

import (
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/clients/amm"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/clients/bank"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/clients/epochmanager"
	"github.com/lagoonlabs/liquidity-hub-api-service/internal/config"
)

type Clients struct {
	EpochManager epochmanager.EpochManagerClient
	Amm          amm.AmmClient
	Bank         bank.BankClient
}

func New(cfg *config.Config) *Clients {
	epochManagerClient := epochmanager.NewEpochManagerClient(&cfg.Clients.EpochManager)
	ammClient := amm.NewAmmClient(&cfg.Clients.Amm)
	bankClient := bank.NewBankClient(&cfg.Clients.Bank)

	return &Clients{
		EpochManager: epochManagerClient,
		Amm:          ammClient,
		Bank:         bankClient,
	}
}
