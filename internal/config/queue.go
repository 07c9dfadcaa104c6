package config

import (
	"fmt"
)

type QueueConfig struct {
	Url                    string `mapstructure:"url"`
	QueueUser              string `mapstructure:"queue-user"`
	QueuePassword          string `mapstructure:"queue-password"`
	EpochChangedQueueName  string `mapstructure:"epoch-changed-queue-name"`
	FillRewardsQueueName   string `mapstructure:"fill-rewards-queue-name"`
	QueueProcessingTimeout int    `mapstructure:"queue-processing-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	if cfg.QueueUser == "" {
		return fmt.Errorf("missing queue user")
	}

	if cfg.QueuePassword == "" {
		return fmt.Errorf("missing queue password")
	}

	if cfg.EpochChangedQueueName == "" {
		return fmt.Errorf("missing epoch changed queue name")
	}

	if cfg.FillRewardsQueueName == "" {
		return fmt.Errorf("missing fill rewards queue name")
	}

	if cfg.QueueProcessingTimeout <= 0 {
		return fmt.Errorf("queue processing timeout must be a positive integer")
	}

	return nil
}
