package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	GRPCPort        string        `envconfig:"GRPC_PORT"`
	DatabaseURL     string        `envconfig:"DATABASE_URL" required:"true"`
	RedisURL        string        `envconfig:"REDIS_URL"`
	RabbitMQURL     string        `envconfig:"RABBITMQ_URL"`
	EventsExchange  string        `envconfig:"EVENTS_EXCHANGE" default:"catalog_events"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"10m"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	RateLimitEnabled bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RateLimitRPS     int  `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst   int  `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

// Load reads the optional .env files and then the process environment.
func Load(logger logs.Logger, envFiles ...string) (*Config, error) {
	err := godotenv.Load(envFiles...)
	switch {
	case err == nil:
		logger.Info("loaded environment variables from .env file")
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("no .env file found, using environment variables")
	default:
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("could not process environment: %w", err)
	}

	if cfg.RateLimitEnabled && cfg.RedisURL == "" {
		return nil, errors.New("RATE_LIMIT_ENABLED requires REDIS_URL")
	}

	logger.Info("configuration loaded",
		"port", cfg.Port,
		"grpcPort", cfg.GRPCPort,
		"redis", cfg.RedisURL != "",
		"rabbitmq", cfg.RabbitMQURL != "",
		"rateLimit", cfg.RateLimitEnabled,
	)

	return &cfg, nil
}
