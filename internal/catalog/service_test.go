package catalog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"testing"

	"github.com/sonuudigital/microservices/catalog-service/internal/cache"
	"github.com/sonuudigital/microservices/catalog-service/internal/catalog"
	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	catalog_mock "github.com/sonuudigital/microservices/catalog-service/internal/mock"
	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const dbErrorMsg = "db error"

type fixture struct {
	querier   *catalog_mock.MockQuerier
	publisher *catalog_mock.MockEventPublisher
	service   *catalog.Service
	logs      *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithCache(t, cache.Nop{})
}

func newFixtureWithCache(t *testing.T, store cache.Store) *fixture {
	t.Helper()
	var buf bytes.Buffer
	f := &fixture{
		querier:   new(catalog_mock.MockQuerier),
		publisher: new(catalog_mock.MockEventPublisher),
		logs:      &buf,
	}
	f.service = catalog.NewService(f.querier, store, f.publisher, logs.NewSlogLoggerWithWriter(&buf, "DEBUG"))
	t.Cleanup(func() {
		f.querier.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})
	return f
}

func (f *fixture) expectEvent(name string) {
	f.publisher.On("Publish", mock.Anything, name, mock.Anything).Return(nil).Once()
}

// memoryCache follows RedisStore's generation rules without a server. When
// err is set every call fails with it.
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
	gens   map[string]int
	err    error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		values: map[string][]byte{},
		gens:   map[string]int{},
	}
}

func (c *memoryCache) Get(_ context.Context, key string, dst any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	data, ok := c.values[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(data, dst)
}

func (c *memoryCache) Generation(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	return strconv.Itoa(c.gens[key]), nil
}

func (c *memoryCache) SetIfGeneration(_ context.Context, key string, value any, gen string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	if strconv.Itoa(c.gens[key]) != gen {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	for _, key := range keys {
		c.gens[key]++
		delete(c.values, key)
	}
	return nil
}

func (c *memoryCache) put(t *testing.T, key string, value any) {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = data
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}

func productInput(t *testing.T, body string) validation.ProductInput {
	t.Helper()
	var in validation.ProductInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func categoryInput(t *testing.T, body string) validation.CategoryInput {
	t.Helper()
	var in validation.CategoryInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}
