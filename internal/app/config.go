package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":3000" validate:"required"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty" validate:"oneof=pretty json"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60" validate:"gte=0"`

	LookupBackend     string        `envconfig:"LOOKUP_BACKEND" default:"local" validate:"oneof=local static redis postgres"`
	LookupTimeout     time.Duration `envconfig:"LOOKUP_TIMEOUT" default:"5s" validate:"gt=0"`
	LookupStaticUsers []string      `envconfig:"LOOKUP_STATIC_USERS"`

	RedisAddr      string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379" validate:"required_if=LookupBackend redis"`
	RedisKeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"usercheck:"`

	PGDSN        string `envconfig:"PG_DSN" validate:"required_if=LookupBackend postgres"`
	PGUsersTable string `envconfig:"PG_USERS_TABLE" default:"directory_users" validate:"required_if=LookupBackend postgres"`
}

var configValidator = validator.New()

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := configValidator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("app: invalid config: %w", err)
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
