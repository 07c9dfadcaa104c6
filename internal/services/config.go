package services

// BondingConfigPublic is the external view of the bonding parameters.
type BondingConfigPublic struct {
	BondingAssets          []string `json:"bonding_assets"`
	RewardDenom            string   `json:"reward_denom"`
	UnbondingPeriodSeconds int64    `json:"unbonding_period_seconds"`
	GracePeriod            uint64   `json:"grace_period"`
	GrowthRate             string   `json:"growth_rate"`
	EpochManagerAddress    string   `json:"epoch_manager_address"`
}

func (s *Services) GetBondingConfig() *BondingConfigPublic {
	return &BondingConfigPublic{
		BondingAssets:          s.cfg.Bonding.BondingAssets,
		RewardDenom:            s.cfg.Bonding.RewardDenom,
		UnbondingPeriodSeconds: int64(s.cfg.Bonding.UnbondingPeriod.Seconds()),
		GracePeriod:            s.cfg.Bonding.GracePeriod,
		GrowthRate:             s.cfg.Bonding.GetGrowthRate().String(),
		EpochManagerAddress:    s.cfg.Bonding.EpochManagerAddress,
	}
}
