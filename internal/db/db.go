package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
)

const connectTimeout = 5 * time.Second

// DB is what the router needs from the store: queries plus a readiness ping.
type DB interface {
	repository.DBTX
	Ping(ctx context.Context) error
}

func InitializePostgresDB(databaseURL string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("could not ping database: %w", err)
	}

	return pool, nil
}
