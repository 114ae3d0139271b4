package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Port string
	}
	Store struct {
		Path string
	}
	Checkout struct {
		SettlementDelay time.Duration
	}
	Log struct {
		Level string
	}
}

// Load reads an optional .env file, then the environment. Every setting has
// a default: the demo must start with no configuration at all.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.App.Port = os.Getenv("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}

	cfg.Store.Path = os.Getenv("DATA_PATH")
	if cfg.Store.Path == "" {
		cfg.Store.Path = "pehchaan.db"
	}

	cfg.Checkout.SettlementDelay = 3 * time.Second
	if raw := os.Getenv("SETTLEMENT_DELAY"); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SETTLEMENT_DELAY: %w", err)
		}
		cfg.Checkout.SettlementDelay = delay
	}

	cfg.Log.Level = os.Getenv("LOG_LEVEL")
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}
