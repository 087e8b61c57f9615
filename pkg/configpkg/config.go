// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environement  string `mapstructure:"GO_ENV"`

	// InterestDailyRate is the signed daily fraction applied to every wallet
	// balance by the accrual job. May be zero or negative.
	InterestDailyRate string `mapstructure:"INTEREST_DAILY_RATE"`
	// InterestRunHourUTC is the UTC hour of day at which the accrual job runs.
	InterestRunHourUTC int `mapstructure:"INTEREST_RUN_HOUR_UTC"`

	RateMin                int64         `mapstructure:"RATE_MIN"`
	RateMax                int64         `mapstructure:"RATE_MAX"`
	RateWindowOpenUTC      int           `mapstructure:"RATE_WINDOW_OPEN_UTC"`
	RateWindowCloseUTC     int           `mapstructure:"RATE_WINDOW_CLOSE_UTC"`
	RateMinInterval        time.Duration `mapstructure:"RATE_MIN_INTERVAL"`
	RateMaxInterval        time.Duration `mapstructure:"RATE_MAX_INTERVAL"`
	RateLiveSamplesMin     int           `mapstructure:"RATE_LIVE_SAMPLES_MIN"`
	RateLiveSamplesMax     int           `mapstructure:"RATE_LIVE_SAMPLES_MAX"`
	RateBackfillSamplesMin int           `mapstructure:"RATE_BACKFILL_SAMPLES_MIN"`
	RateBackfillSamplesMax int           `mapstructure:"RATE_BACKFILL_SAMPLES_MAX"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("INTEREST_DAILY_RATE", "0.00003")
	viper.SetDefault("INTEREST_RUN_HOUR_UTC", 12)
	viper.SetDefault("RATE_MIN", 1900)
	viper.SetDefault("RATE_MAX", 2100)
	viper.SetDefault("RATE_WINDOW_OPEN_UTC", 9)
	viper.SetDefault("RATE_WINDOW_CLOSE_UTC", 15)
	viper.SetDefault("RATE_MIN_INTERVAL", 15*time.Minute)
	viper.SetDefault("RATE_MAX_INTERVAL", 2*time.Hour)
	viper.SetDefault("RATE_LIVE_SAMPLES_MIN", 15)
	viper.SetDefault("RATE_LIVE_SAMPLES_MAX", 30)
	viper.SetDefault("RATE_BACKFILL_SAMPLES_MIN", 10)
	viper.SetDefault("RATE_BACKFILL_SAMPLES_MAX", 30)

	viper.AutomaticEnv()

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
