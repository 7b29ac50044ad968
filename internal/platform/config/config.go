package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	LogLevel          string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Holdings ledger
	LedgerTrace          bool
	HoldingsExcludeVoid  bool
	NumberingMaxAttempts int

	// HTTP surface
	RateLimit          string // ulule formatted, e.g. "100-M"
	CORSAllowedOrigins []string

	// Billing integration
	BillingAPIURL  string
	BillingAPIKey  string
	BillingTimeout time.Duration

	// Bootstrap admin created at startup when missing
	BootstrapAdminUsername string
	BootstrapAdminPassword string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "cylinder-holdings")
	viper.SetDefault("LEDGER_TRACE", false)
	viper.SetDefault("HOLDINGS_EXCLUDE_VOID", false)
	viper.SetDefault("NUMBERING_MAX_ATTEMPTS", 5)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("BILLING_API_URL", "")
	viper.SetDefault("BILLING_API_KEY", "")
	viper.SetDefault("BILLING_TIMEOUT", "10s")
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "8h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "cylinder-holdings"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.NumberingMaxAttempts = viper.GetInt("NUMBERING_MAX_ATTEMPTS")
	if cfg.NumberingMaxAttempts <= 0 {
		log.Printf("Warning: Invalid value for NUMBERING_MAX_ATTEMPTS (%d). Defaulting to 5.\n", cfg.NumberingMaxAttempts)
		cfg.NumberingMaxAttempts = 5
	}

	billingTimeoutStr := viper.GetString("BILLING_TIMEOUT")
	cfg.BillingTimeout, err = time.ParseDuration(billingTimeoutStr)
	if err != nil {
		cfg.BillingTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for BILLING_TIMEOUT ('%s'). Defaulting to %s.\n", billingTimeoutStr, cfg.BillingTimeout.String())
	}

	cfg.BillingAPIURL = strings.TrimRight(viper.GetString("BILLING_API_URL"), "/")
	cfg.BillingAPIKey = viper.GetString("BILLING_API_KEY")
	if cfg.BillingAPIURL == "" {
		log.Println("Warning: BILLING_API_URL not set. Billing sync will not function.")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.LedgerTrace = viper.GetBool("LEDGER_TRACE")
	cfg.HoldingsExcludeVoid = viper.GetBool("HOLDINGS_EXCLUDE_VOID")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.BootstrapAdminUsername = viper.GetString("BOOTSTRAP_ADMIN_USERNAME")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")

	return cfg, nil
}
