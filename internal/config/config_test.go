package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, "TravelPro Agency", cfg.Quotes.CompanyName)
	assert.Equal(t, "USD", cfg.Quotes.Currency)
	assert.Equal(t, 14, cfg.Quotes.ValidityDays)
	assert.Equal(t, 25, cfg.Quotes.DepositPercent)
	assert.Equal(t, 30, cfg.Quotes.PaymentDaysBefore)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("QUOTES_COMPANY_NAME", "Wanderlust Travel")
	t.Setenv("QUOTES_VALIDITY_DAYS", "7")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.HTTP.Port)
	assert.Equal(t, "Wanderlust Travel", cfg.Quotes.CompanyName)
	assert.Equal(t, 7, cfg.Quotes.ValidityDays)
}

func TestLoad_RejectsBadDepositPercent(t *testing.T) {
	t.Setenv("QUOTES_DEPOSIT_PERCENT", "140")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUOTES_DEPOSIT_PERCENT")
}
