package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string

	// Defaults applied when documents are created without an explicit value.
	DefaultCurrency      string
	DefaultUnitOfMeasure string

	// StatementCurrencyLabel is printed on rendered statements.
	StatementCurrencyLabel string
	StatementTimeout       time.Duration

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("DEFAULT_UNIT_OF_MEASURE", "Pcs")
	viper.SetDefault("STATEMENT_CURRENCY_LABEL", "Dirham (UAE)")
	viper.SetDefault("STATEMENT_TIMEOUT", "15s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:            viper.GetString("PGSQL_URL"),
		Port:                   viper.GetString("PORT"),
		IsProduction:           viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:              viper.GetString("JWT_SECRET"),
		MigrationsPath:         viper.GetString("MIGRATIONS_PATH"),
		DefaultCurrency:        strings.ToUpper(viper.GetString("DEFAULT_CURRENCY")),
		DefaultUnitOfMeasure:   viper.GetString("DEFAULT_UNIT_OF_MEASURE"),
		StatementCurrencyLabel: viper.GetString("STATEMENT_CURRENCY_LABEL"),
		RateLimit:              viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	timeoutStr := viper.GetString("STATEMENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for STATEMENT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.StatementTimeout = timeout

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
