package config

import (
	"fmt"
	"net"
)

// MetricsConfig holds the bind address of the Prometheus scrape endpoint,
// which runs on its own port next to the API server.
type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Port < 1024 || cfg.Port > 65535 {
		return fmt.Errorf("metrics port must be in range 1024-65535, got %d", cfg.Port)
	}
	if net.ParseIP(cfg.Host) == nil {
		return fmt.Errorf("invalid metrics host: %q", cfg.Host)
	}
	return nil
}

func (cfg *MetricsConfig) GetMetricsPort() int {
	return cfg.Port
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Host: "0.0.0.0",
		Port: 2112,
	}
}
