// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environement variables.
// The risk and fallback constants are business values carried over from the
// production validation rules; they are kept configurable pending
// product-owner review, not re-derived.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environement        string        `mapstructure:"GO_ENV"`

	// RiskHighValueMinor is the amount, in currency minor units, above which
	// a record counts toward the high-value risk signal.
	RiskHighValueMinor int64 `mapstructure:"RISK_HIGH_VALUE_MINOR"`
	// RiskCacheInterval is the cadence of the periodic risk snapshot refresh.
	RiskCacheInterval time.Duration `mapstructure:"RISK_CACHE_INTERVAL"`
	// ProcessingHoursFallback is reported, flagged as an estimate, when no
	// record was validated inside the queried window.
	ProcessingHoursFallback int64 `mapstructure:"PROCESSING_HOURS_FALLBACK"`

	// FeeWebhookURL receives the fee calculation trigger for procedure-driven
	// payouts. Empty disables the outbound call.
	FeeWebhookURL string `mapstructure:"FEE_WEBHOOK_URL"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("RISK_HIGH_VALUE_MINOR", 5_000_000)
	viper.SetDefault("RISK_CACHE_INTERVAL", 30*time.Minute)
	viper.SetDefault("PROCESSING_HOURS_FALLBACK", 24)

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
