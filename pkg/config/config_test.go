package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DATA_PATH", "")
	t.Setenv("SETTLEMENT_DELAY", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "pehchaan.db", cfg.Store.Path)
	assert.Equal(t, 3*time.Second, cfg.Checkout.SettlementDelay)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATA_PATH", "/tmp/demo.db")
	t.Setenv("SETTLEMENT_DELAY", "250ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "/tmp/demo.db", cfg.Store.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Checkout.SettlementDelay)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BadSettlementDelay(t *testing.T) {
	t.Setenv("SETTLEMENT_DELAY", "soon")

	_, err := Load("")
	assert.Error(t, err)
}
