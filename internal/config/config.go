package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the service.
type Config struct {
	AppPort           string
	DBDriver          string
	DatabaseDSN       string
	CloverBaseURL     string
	CloverTimeout     time.Duration
	DefaultMerchantID string
	CoffeeCategory    string
	RabbitMQURL       string
	LogLevel          string
	LogFormat         string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=bitewise port=5432 sslmode=disable")
	v.SetDefault("CLOVER_BASE_URL", "https://sandbox.dev.clover.com")
	v.SetDefault("CLOVER_TIMEOUT", "10s")
	v.SetDefault("DEFAULT_MERCHANT_ID", "")
	v.SetDefault("COFFEE_CATEGORY", "Coffee")
	v.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads configuration from environment variables and, when CONFIG_FILE
// is set, from that file. Environment values win over the file.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:           v.GetString("APP_PORT"),
		DBDriver:          v.GetString("DB_DRIVER"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		CloverBaseURL:     v.GetString("CLOVER_BASE_URL"),
		CloverTimeout:     v.GetDuration("CLOVER_TIMEOUT"),
		DefaultMerchantID: v.GetString("DEFAULT_MERCHANT_ID"),
		CoffeeCategory:    v.GetString("COFFEE_CATEGORY"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", c.DBDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if c.CloverBaseURL == "" {
		return fmt.Errorf("CLOVER_BASE_URL must not be empty")
	}
	if c.CloverTimeout <= 0 {
		return fmt.Errorf("CLOVER_TIMEOUT must be positive")
	}
	if c.CoffeeCategory == "" {
		return fmt.Errorf("COFFEE_CATEGORY must not be empty")
	}
	return nil
}
