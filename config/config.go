package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the platform service.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	PayOS    PayOSConfig
	CoinPay  CoinPayConfig
	Ledger   LedgerConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret     string
	TTLMinutes int
}

type PayOSConfig struct {
	ClientID    string
	APIKey      string
	ChecksumKey string
	ReturnURL   string
	CancelURL   string
}

type CoinPayConfig struct {
	BaseURL       string
	APIKey        string
	WebhookSecret string
}

// LedgerConfig holds the money rules: commission, payout gating and
// identity-document retention.
type LedgerConfig struct {
	CommissionBps       int64 // platform flat rate, basis points
	GraceDays           int   // first-month window with zero commission
	MinPayoutMinor      int64
	PayoutCooldownHours int
	DocRetentionHours   int
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DATABASE_HOST", "localhost"),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "fanloft"),
			Password: getEnv("DATABASE_PASSWORD", "fanloft"),
			DBName:   getEnv("DATABASE_NAME", "fanloft"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", ""),
			TTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		},
		PayOS: PayOSConfig{
			ClientID:    getEnv("PAYOS_CLIENT_ID", ""),
			APIKey:      getEnv("PAYOS_API_KEY", ""),
			ChecksumKey: getEnv("PAYOS_CHECKSUM_KEY", ""),
			ReturnURL:   getEnv("PAYOS_RETURN_URL", ""),
			CancelURL:   getEnv("PAYOS_CANCEL_URL", ""),
		},
		CoinPay: CoinPayConfig{
			BaseURL:       getEnv("COINPAY_BASE_URL", "https://api.coinpay.example"),
			APIKey:        getEnv("COINPAY_API_KEY", ""),
			WebhookSecret: getEnv("COINPAY_WEBHOOK_SECRET", ""),
		},
		Ledger: LedgerConfig{
			CommissionBps:       int64(getEnvInt("COMMISSION_BPS", 500)),
			GraceDays:           getEnvInt("COMMISSION_GRACE_DAYS", 30),
			MinPayoutMinor:      int64(getEnvInt("MIN_PAYOUT_MINOR", 10000)),
			PayoutCooldownHours: getEnvInt("PAYOUT_COOLDOWN_HOURS", 24),
			DocRetentionHours:   getEnvInt("DOC_RETENTION_HOURS", 24),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DATABASE_HOST is required")
	}

	if c.Database.User == "" {
		return fmt.Errorf("DATABASE_USER is required")
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("DATABASE_NAME is required")
	}

	if c.Ledger.CommissionBps < 0 || c.Ledger.CommissionBps > 10000 {
		return fmt.Errorf("COMMISSION_BPS must be between 0 and 10000")
	}

	if c.Ledger.MinPayoutMinor <= 0 {
		return fmt.Errorf("MIN_PAYOUT_MINOR must be positive")
	}

	return nil
}

// GetDSN returns the database connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
