package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type NotificationsConfig struct {
	ExpirationInDays int `mapstructure:"expiration_in_days"`
}

func (config NotificationsConfig) validate() error {
	if config.ExpirationInDays <= 0 {
		return fmt.Errorf("expiration_in_days must be greater than zero")
	}
	return nil
}

func (config NotificationsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("notifications.expiration_in_days", "NOTIFICATION_EXPIRATION_DAYS")
}
