package config_test

import (
	"testing"

	"github.com/SscSPs/wallet_ledger_app/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.DataSourceMemory, cfg.DataSource)
	assert.Equal(t, "NGN", cfg.CurrencyCode)
	assert.Equal(t, "₦", cfg.CurrencySymbol)
	assert.Equal(t, "234", cfg.PhoneCountryCode)
	assert.Equal(t, 20, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, ',', cfg.ExportDelimiter)
	assert.Equal(t, []string{"user_1", "user_2", "user_3"}, cfg.MemorySeedOwners)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/ledger.db")
	t.Setenv("CURRENCY_CODE", "usd")
	t.Setenv("CURRENCY_SYMBOL", "$")
	t.Setenv("PHONE_COUNTRY_CODE", "+1")
	t.Setenv("DEFAULT_PAGE_SIZE", "50")
	t.Setenv("MAX_PAGE_SIZE", "200")
	t.Setenv("EXPORT_DELIMITER", "tab")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, config.DataSourceSQLite, cfg.DataSource)
	assert.Equal(t, "/tmp/ledger.db", cfg.SQLitePath)
	assert.Equal(t, "USD", cfg.CurrencyCode)
	assert.Equal(t, "1", cfg.PhoneCountryCode)
	assert.Equal(t, 50, cfg.DefaultPageSize)
	assert.Equal(t, 200, cfg.MaxPageSize)
	assert.Equal(t, '\t', cfg.ExportDelimiter)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_DefaultPageSizeAboveMaxFallsBack(t *testing.T) {
	t.Setenv("DATA_SOURCE", "memory")
	t.Setenv("DEFAULT_PAGE_SIZE", "500")
	t.Setenv("MAX_PAGE_SIZE", "10")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DefaultPageSize)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown data source", map[string]string{"DATA_SOURCE": "bigquery"}},
		{"postgres without url", map[string]string{"DATA_SOURCE": "postgres", "PGSQL_URL": ""}},
		{"multi-character delimiter", map[string]string{"DATA_SOURCE": "memory", "EXPORT_DELIMITER": ";;"}},
		{"quote delimiter", map[string]string{"DATA_SOURCE": "memory", "EXPORT_DELIMITER": `"`}},
		{"production without secret", map[string]string{"DATA_SOURCE": "memory", "IS_PRODUCTION": "true", "JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}
