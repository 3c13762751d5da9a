package config

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const insecureJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Supported values of DATA_SOURCE.
const (
	DataSourcePostgres = "postgres"
	DataSourceSQLite   = "sqlite"
	DataSourceMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	JWTSecret     string
	DataSource    string
	DatabaseURL   string
	EnableDBCheck bool
	SQLitePath    string

	// Synthetic data loaded into the selected source at startup; 0 disables seeding.
	MemorySeedSize   int
	MemorySeedOwners []string

	CurrencyCode     string
	CurrencySymbol   string
	PhoneCountryCode string
	DefaultPageSize  int
	MaxPageSize      int
	ExportDelimiter  rune

	RateLimit          string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("DATA_SOURCE", DataSourceMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("SQLITE_PATH", "data/ledger.db")
	v.SetDefault("MEMORY_SEED_SIZE", 250)
	v.SetDefault("MEMORY_SEED_OWNERS", "user_1,user_2,user_3")
	v.SetDefault("CURRENCY_CODE", "NGN")
	v.SetDefault("CURRENCY_SYMBOL", "₦")
	v.SetDefault("PHONE_COUNTRY_CODE", "234")
	v.SetDefault("DEFAULT_PAGE_SIZE", 20)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	v.SetDefault("EXPORT_DELIMITER", ",")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.AutomaticEnv()

	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		DataSource:         strings.ToLower(strings.TrimSpace(v.GetString("DATA_SOURCE"))),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		MemorySeedSize:     v.GetInt("MEMORY_SEED_SIZE"),
		MemorySeedOwners:   splitList(v.GetString("MEMORY_SEED_OWNERS")),
		CurrencyCode:       strings.ToUpper(v.GetString("CURRENCY_CODE")),
		CurrencySymbol:     v.GetString("CURRENCY_SYMBOL"),
		PhoneCountryCode:   strings.TrimPrefix(v.GetString("PHONE_COUNTRY_CODE"), "+"),
		DefaultPageSize:    v.GetInt("DEFAULT_PAGE_SIZE"),
		MaxPageSize:        v.GetInt("MAX_PAGE_SIZE"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = insecureJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	switch cfg.DataSource {
	case DataSourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when DATA_SOURCE is %q", DataSourcePostgres)
		}
	case DataSourceSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH is required when DATA_SOURCE is %q", DataSourceSQLite)
		}
	case DataSourceMemory:
	default:
		return nil, fmt.Errorf("invalid DATA_SOURCE %q: must be one of postgres, sqlite, memory", cfg.DataSource)
	}

	if cfg.MemorySeedSize < 0 {
		log.Printf("Warning: Invalid value for MEMORY_SEED_SIZE (%d). Seeding disabled.\n", cfg.MemorySeedSize)
		cfg.MemorySeedSize = 0
	}

	if cfg.MaxPageSize < 1 {
		log.Printf("Warning: Invalid value for MAX_PAGE_SIZE (%d). Defaulting to 100.\n", cfg.MaxPageSize)
		cfg.MaxPageSize = 100
	}
	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > cfg.MaxPageSize {
		fallback := min(20, cfg.MaxPageSize)
		log.Printf("Warning: Invalid value for DEFAULT_PAGE_SIZE (%d). Defaulting to %d.\n", cfg.DefaultPageSize, fallback)
		cfg.DefaultPageSize = fallback
	}

	delimiter, err := parseDelimiter(v.GetString("EXPORT_DELIMITER"))
	if err != nil {
		return nil, err
	}
	cfg.ExportDelimiter = delimiter

	return cfg, nil
}

// parseDelimiter accepts a single character, or "tab" / `\t` for a tab.
func parseDelimiter(raw string) (rune, error) {
	switch strings.ToLower(raw) {
	case "":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("EXPORT_DELIMITER must be a single character, got %q", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("EXPORT_DELIMITER %q is not allowed", raw)
	}
	return r, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
