package config

import (
	"fmt"
	"time"

	apperrors "sjsage522/zenlesscollector/pkg/errors"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Store backends
const (
	StoreFile     = "file"
	StoreMemcache = "memcache"
	StoreRedis    = "redis"
)

// Config represents the application configuration
type Config struct {
	// Source page
	SourceURL     string        `env:"SOURCE_URL" envDefault:"https://zenless-zone-zero.fandom.com/wiki/Redemption_Code" validate:"required,url"`
	UserAgent     string        `env:"USER_AGENT" envDefault:"Mozilla/5.0" validate:"required"`
	FetchTimeout  time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	TableSelector string        `env:"TABLE_SELECTOR" envDefault:"table.wikitable" validate:"required"`
	CurrencyName  string        `env:"CURRENCY_NAME" envDefault:"Polychrome" validate:"required"`

	// Snapshot store
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file" validate:"oneof=file memcache redis"`
	CacheFile    string `env:"CACHE_FILE" envDefault:"cached_codes.json" validate:"required_if=StoreBackend file"`
	CacheKey     string `env:"CACHE_KEY" envDefault:"zenless:codes" validate:"required"`

	// Memcache configuration
	MemcacheAddr string `env:"MEMCACHE_ADDR" envDefault:"localhost:11211" validate:"required_if=StoreBackend memcache"`

	// Redis configuration
	RedisAddr            string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB              int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	RedisStream          string `env:"REDIS_STREAM" envDefault:"zenless:newcodes"`
	RedisStreamMaxLength int    `env:"REDIS_STREAM_MAX_LENGTH" envDefault:"1000" validate:"gt=0"`
	PublishEnabled       bool   `env:"PUBLISH_ENABLED" envDefault:"false"`

	// Telegram notifications
	TelegramToken  string `env:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `env:"TELEGRAM_CHAT_ID"`

	// Web UI
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080" validate:"required"`

	// Watch mode
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"30m" validate:"gt=0"`

	// Environment
	Environment string `env:"COLLECTOR_ENVIRONMENT" envDefault:"development"`
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperrors.NewConfiguration("parse environment", err)
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field requirements
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.NewConfiguration("invalid configuration", err)
	}
	if c.StoreBackend == StoreRedis && c.RedisAddr == "" {
		return apperrors.NewConfiguration("REDIS_ADDR is required for the redis store", nil)
	}
	if c.PublishEnabled && (c.RedisAddr == "" || c.RedisStream == "") {
		return apperrors.NewConfiguration("REDIS_ADDR and REDIS_STREAM are required when publishing", nil)
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return apperrors.NewConfiguration("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set", nil)
	}
	return nil
}

// NotifyEnabled reports whether Telegram notifications are configured
func (c *Config) NotifyEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// String returns a log-safe summary of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("source=%s store=%s publish=%t notify=%t env=%s",
		c.SourceURL, c.StoreBackend, c.PublishEnabled, c.NotifyEnabled(), c.Environment)
}
