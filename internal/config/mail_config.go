package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type MailConfig struct {
	Host                 string  `mapstructure:"host"`
	Port                 int     `mapstructure:"port"`
	From                 string  `mapstructure:"from"`
	User                 string  `mapstructure:"user"`
	Password             string  `mapstructure:"password"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config MailConfig) validate() error {

	var missingFields []string

	if config.Host == "" {
		missingFields = append(missingFields, "host")
	}

	if config.From == "" {
		missingFields = append(missingFields, "from")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config MailConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("mail.host", "MAIL_HOST"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.port", "MAIL_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.from", "MAIL_FROM"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.user", "MAIL_USER"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.password", "MAIL_PASSWORD"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to bind variables: %v", errs)
	}

	return nil
}
