package config

import "fmt"

// ExternalClientConfig is the shared shape for collaborator service clients.
type ExternalClientConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

func (cfg *ExternalClientConfig) Validate(name string) error {
	if cfg.Host == "" {
		return fmt.Errorf("missing %s client host", name)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid %s client port", name)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("%s client timeout must be a positive integer", name)
	}
	return nil
}

type ClientsConfig struct {
	EpochManager ExternalClientConfig `mapstructure:"epoch-manager"`
	Amm          ExternalClientConfig `mapstructure:"amm"`
	Bank         ExternalClientConfig `mapstructure:"bank"`
}

func (cfg *ClientsConfig) Validate() error {
	if err := cfg.EpochManager.Validate("epoch manager"); err != nil {
		return err
	}
	if err := cfg.Amm.Validate("amm"); err != nil {
		return err
	}
	if err := cfg.Bank.Validate("bank"); err != nil {
		return err
	}
	return nil
}
