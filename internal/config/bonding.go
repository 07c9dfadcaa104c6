package config

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/lagoonlabs/liquidity-hub-api-service/internal/utils"
)

// BondingConfig carries the bonding manager parameters. GrowthRate is parsed
// into a fixed-point decimal during validation.
type BondingConfig struct {
	// Denoms accepted by the bond entry point
	BondingAssets []string `mapstructure:"bonding-assets"`
	// Denom all fee revenue is swapped into before distribution
	RewardDenom string `mapstructure:"reward-denom"`
	// Delay between unbond and withdraw
	UnbondingPeriod time.Duration `mapstructure:"unbonding-period"`
	// Number of epochs a reward bucket stays claimable after its own epoch
	GracePeriod uint64 `mapstructure:"grace-period"`
	// Weight accrued per bonded token per second, decimal string, default "1"
	GrowthRate string `mapstructure:"growth-rate"`
	// Address of the epoch manager allowed to call the epoch-changed hook
	EpochManagerAddress string `mapstructure:"epoch-manager-address"`

	growthRate sdkmath.LegacyDec
}

func (cfg *BondingConfig) Validate() error {
	if len(cfg.BondingAssets) == 0 {
		return fmt.Errorf("at least one bonding asset must be configured")
	}

	for _, denom := range cfg.BondingAssets {
		if !utils.IsValidDenom(denom) {
			return fmt.Errorf("invalid bonding asset denom: %s", denom)
		}
	}

	if !utils.IsValidDenom(cfg.RewardDenom) {
		return fmt.Errorf("invalid reward denom: %s", cfg.RewardDenom)
	}

	if cfg.UnbondingPeriod <= 0 {
		return fmt.Errorf("unbonding period must be positive")
	}

	if cfg.GracePeriod == 0 {
		return fmt.Errorf("grace period must be at least one epoch")
	}

	if cfg.EpochManagerAddress == "" {
		return fmt.Errorf("missing epoch manager address")
	}

	if cfg.GrowthRate == "" {
		cfg.GrowthRate = "1"
	}
	rate, err := sdkmath.LegacyNewDecFromStr(cfg.GrowthRate)
	if err != nil {
		return fmt.Errorf("invalid growth rate: %w", err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("growth rate cannot be negative")
	}
	cfg.growthRate = rate

	return nil
}

func (cfg *BondingConfig) GetGrowthRate() sdkmath.LegacyDec {
	return cfg.growthRate
}

func (cfg *BondingConfig) IsBondingAsset(denom string) bool {
	return utils.Contains(cfg.BondingAssets, denom)
}
