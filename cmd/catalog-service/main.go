package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sonuudigital/microservices/catalog-service/internal/cache"
	"github.com/sonuudigital/microservices/catalog-service/internal/catalog"
	"github.com/sonuudigital/microservices/catalog-service/internal/config"
	"github.com/sonuudigital/microservices/catalog-service/internal/db"
	"github.com/sonuudigital/microservices/catalog-service/internal/events"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	"github.com/sonuudigital/microservices/catalog-service/internal/middlewares"
	"github.com/sonuudigital/microservices/catalog-service/internal/rabbitmq"
	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
	"github.com/sonuudigital/microservices/catalog-service/internal/router"
	"github.com/sonuudigital/microservices/catalog-service/internal/web"
	"github.com/sonuudigital/microservices/catalog-service/internal/web/health"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
)

const serviceName = "catalog-service"

func main() {
	logger := logs.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	pool, err := db.InitializePostgresDB(cfg.DatabaseURL)
	if err != nil {
		logger.Error("error connecting to database", "error", err)
		os.Exit(1)
	}
	logger.Info("database connected successfully")

	checks := []health.CheckFunc{pool.Ping}
	var shutdownHooks []func()

	var (
		cacheStore cache.Store = cache.Nop{}
		limiter    middlewares.Limiter
	)
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Error("error connecting to redis", "error", err)
			os.Exit(1)
		}
		logger.Info("redis connected successfully")

		cacheStore = cache.NewRedisStore(redisClient, cfg.CacheTTL)
		limiter = redis_rate.NewLimiter(redisClient)
		checks = append(checks, redisPing(redisClient))
		shutdownHooks = append(shutdownHooks, func() { _ = redisClient.Close() })
	}

	var publisher catalog.EventPublisher = events.Nop{}
	if cfg.RabbitMQURL != "" {
		rabbitClient, err := rabbitmq.NewClient(logger, cfg.RabbitMQURL)
		if err != nil {
			logger.Error("error connecting to rabbitmq", "error", err)
			os.Exit(1)
		}
		logger.Info("rabbitmq connected successfully", "exchange", cfg.EventsExchange)

		publisher = events.NewBus(events.NewTopicPublisher(rabbitClient, cfg.EventsExchange))
		checks = append(checks, rabbitClient.Ping)
		shutdownHooks = append(shutdownHooks, rabbitClient.Close)
	}

	service := catalog.NewService(repository.New(pool), cacheStore, publisher, logger)

	rateLimiter := middlewares.NewRateLimiterMiddleware(logger, middlewares.RateLimitConfig{
		Rate:  rate.Limit(cfg.RateLimitRPS),
		Burst: cfg.RateLimitBurst,
	}, limiter, cfg.RateLimitEnabled)

	mux := router.ConfigRoutes(pool, service, rateLimiter, logger, checks[1:]...)

	srv, err := web.InitializeServer(cfg.Port, mux, logger)
	if err != nil {
		logger.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	if cfg.GRPCPort != "" {
		grpcServer, err := startGRPCHealthServer(cfg.GRPCPort, logger, checks...)
		if err != nil {
			logger.Error("failed to start gRPC health server", "error", err)
			os.Exit(1)
		}
		shutdownHooks = append([]func(){grpcServer.GracefulStop}, shutdownHooks...)
	}

	shutdownHooks = append(shutdownHooks, pool.Close)

	web.StartServerAndWaitForShutdown(srv, logger, cfg.ShutdownTimeout, shutdownHooks...)
}

func redisPing(client *redis.Client) health.CheckFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

func startGRPCHealthServer(port string, logger logs.Logger, checks ...health.CheckFunc) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for gRPC: %w", err)
	}

	grpcServer := grpc.NewServer()
	health.StartGRPCHealthCheckService(grpcServer, serviceName, checks...)
	web.StartGRPCServer(grpcServer, lis, logger)

	return grpcServer, nil
}
