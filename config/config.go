package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Env          string `envconfig:"ENV" default:"production"`
	Port         int    `envconfig:"PORT" default:"8930"`
	DBURL        string `envconfig:"DB_URL" required:"true"`
	RedisAddress string `envconfig:"REDIS_URL" required:"true"`
	BearerToken  string `envconfig:"BEARER_TOKEN" required:"true"`
	SymmetricKey string `envconfig:"SYMMETRIC_KEY" required:"true"`

	// AdminPasskeyHash is the bcrypt hash of the admin dashboard passkey.
	AdminPasskeyHash string `envconfig:"ADMIN_PASSKEY_HASH"`

	AllowedOrigins    []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	RequestsPerSecond float64       `envconfig:"RATE_LIMIT_RPS" default:"15"`
	Burst             int           `envconfig:"RATE_LIMIT_BURST" default:"30"`
	SubmissionLockTTL time.Duration `envconfig:"SUBMISSION_LOCK_TTL" default:"30s"`
	AssetsDir         string        `envconfig:"ASSETS_DIR" default:"public/assets"`

	Redis RedisConfig
	SMTP  SMTPConfig
}

type RedisConfig struct {
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"30s"`
	MinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"5"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"10s"`
	MaxRetries   int           `envconfig:"REDIS_MAX_RETRIES" default:"3"`
}

// SMTPConfig configures outgoing mail. An empty Host disables notifications.
type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASS"`
	From     string `envconfig:"SMTP_FROM"`
}

// Load reads the configuration from environment variables.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if len(cfg.SymmetricKey) != 32 {
		return nil, fmt.Errorf("SYMMETRIC_KEY must be 32 bytes long, got %d", len(cfg.SymmetricKey))
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}
	return &cfg, nil
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// IsDevelopment reports whether the app runs with development settings.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}
