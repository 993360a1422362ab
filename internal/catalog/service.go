package catalog

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sonuudigital/microservices/catalog-service/internal/cache"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	"github.com/sonuudigital/microservices/catalog-service/internal/repository"
)

const (
	sideEffectTimeout = 2 * time.Second

	productCachePrefix    = "catalog:product:"
	categoryCachePrefix   = "catalog:category:"
	allCategoriesCacheKey = "catalog:categories"
)

type EventPublisher interface {
	Publish(ctx context.Context, name string, payload any) error
}

// Service holds the product and category rules. It keeps no state of its own
// between calls; the store, cache and publisher are shared handles.
type Service struct {
	queries repository.Querier
	cache   cache.Store
	events  EventPublisher
	logger  logs.Logger
}

func NewService(queries repository.Querier, cacheStore cache.Store, publisher EventPublisher, logger logs.Logger) *Service {
	return &Service{
		queries: queries,
		cache:   cacheStore,
		events:  publisher,
		logger:  logger,
	}
}

func productCacheKey(id int64) string {
	return productCachePrefix + strconv.FormatInt(id, 10)
}

func categoryCacheKey(id int64) string {
	return categoryCachePrefix + strconv.FormatInt(id, 10)
}

func (s *Service) fromCache(ctx context.Context, key string, dst any) bool {
	err := s.cache.Get(ctx, key, dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("failed to read from cache", "key", key, "error", err)
	}
	return false
}

// generation must be read before the database load whose result is written
// back with toCache. It reports false when the cache cannot be trusted to guard
// the write.
func (s *Service) generation(ctx context.Context, key string) (string, bool) {
	gen, err := s.cache.Generation(ctx, key)
	if err != nil {
		s.logger.Warn("failed to read cache generation", "key", key, "error", err)
		return "", false
	}
	return gen, true
}

func (s *Service) toCache(ctx context.Context, key, gen string, value any) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if err := s.cache.SetIfGeneration(ctx, key, value, gen); err != nil {
		s.logger.Warn("failed to write to cache", "key", key, "error", err)
	}
}

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Error("failed to invalidate cache", "keys", keys, "error", err)
	}
}

// publish never fails the request; the write has already been committed.
func (s *Service) publish(ctx context.Context, name string, payload any) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if err := s.events.Publish(ctx, name, payload); err != nil {
		s.logger.Error("failed to publish event", "event", name, "error", err)
	}
}
