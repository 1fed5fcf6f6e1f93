package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vending-machine/pkg/config"
)

var keys = []string{
	"APP_ENV", "APP_NAME", "LOG_LEVEL", "CARD_ID_PREFIX", "CARD_ID_MIN_LENGTH",
	"CARD_LIMIT", "CATALOG_PATH", "RECEIPT_PDF_PATH", "INPUT_MAX_ATTEMPTS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "vending-machine", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "IB", cfg.Card.IDPrefix)
	assert.Equal(t, 12, cfg.Card.IDMinLength)
	assert.True(t, cfg.Card.Limit.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, cfg.Catalog.Path)
	assert.Empty(t, cfg.Receipt.PDFPath)
	assert.Equal(t, 0, cfg.Input.MaxAttempts)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CARD_ID_PREFIX", "gb")
	t.Setenv("CARD_ID_MIN_LENGTH", "8")
	t.Setenv("CARD_LIMIT", "75.50")
	t.Setenv("CATALOG_PATH", "/tmp/catalog.yaml")
	t.Setenv("RECEIPT_PDF_PATH", "/tmp/receipt.pdf")
	t.Setenv("INPUT_MAX_ATTEMPTS", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "GB", cfg.Card.IDPrefix)
	assert.Equal(t, 8, cfg.Card.IDMinLength)
	assert.True(t, cfg.Card.Limit.Equal(decimal.RequireFromString("75.5")))
	assert.Equal(t, "/tmp/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, "/tmp/receipt.pdf", cfg.Receipt.PDFPath)
	assert.Equal(t, 3, cfg.Input.MaxAttempts)
}

func TestLoad_Invalidos(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARD_LIMIT", "mucho")
	_, err := config.Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("CARD_LIMIT", "-1")
	_, err = config.Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("INPUT_MAX_ATTEMPTS", "-2")
	_, err = config.Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("INPUT_MAX_ATTEMPTS", "tres")
	_, err = config.Load()
	assert.ErrorContains(t, err, "INPUT_MAX_ATTEMPTS")

	clearEnv(t)
	t.Setenv("CARD_ID_MIN_LENGTH", "doce")
	_, err = config.Load()
	assert.ErrorContains(t, err, "CARD_ID_MIN_LENGTH")

	clearEnv(t)
	t.Setenv("CARD_ID_MIN_LENGTH", "-1")
	_, err = config.Load()
	assert.Error(t, err)
}
