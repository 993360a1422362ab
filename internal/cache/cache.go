package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrMiss = errors.New("cache miss")

// Store is a read-through cache with generation guarded writes. A reader
// takes the key's generation before loading from the database and writes
// back with SetIfGeneration; Delete bumps the generation so a load that
// raced an invalidation is dropped instead of cached.
type Store interface {
	Get(ctx context.Context, key string, dst any) error
	Generation(ctx context.Context, key string) (string, error)
	SetIfGeneration(ctx context.Context, key string, value any, gen string) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	generationSuffix = ":gen"
	initialGen       = "0"
)

var setIfGeneration = redis.NewScript(`
if (redis.call("GET", KEYS[2]) or "0") ~= ARGV[2] then
  return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
return 1
`)

// RedisStore keeps JSON encoded values in redis with a fixed expiration.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func generationKey(key string) string {
	return key + generationSuffix
}

func (s *RedisStore) Get(ctx context.Context, key string, dst any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return fmt.Errorf("could not read %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("could not decode cached %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Generation(ctx context.Context, key string) (string, error) {
	gen, err := s.client.Get(ctx, generationKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return initialGen, nil
		}
		return "", fmt.Errorf("could not read generation of %s: %w", key, err)
	}
	return gen, nil
}

// SetIfGeneration stores value only while the key is still at gen. A write
// skipped because of a newer generation is not an error.
func (s *RedisStore) SetIfGeneration(ctx context.Context, key string, value any, gen string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode %s for cache: %w", key, err)
	}

	keys := []string{key, generationKey(key)}
	return setIfGeneration.Run(ctx, s.client, keys, data, gen, s.ttl.Milliseconds()).Err()
}

// Delete bumps every generation before removing the values.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Incr(ctx, generationKey(key))
			pipe.Expire(ctx, generationKey(key), s.ttl)
		}
		pipe.Del(ctx, keys...)
		return nil
	})
	return err
}

// Nop is used when no redis is configured; every read misses.
type Nop struct{}

func (Nop) Get(context.Context, string, any) error                     { return ErrMiss }
func (Nop) Generation(context.Context, string) (string, error)         { return "", nil }
func (Nop) SetIfGeneration(context.Context, string, any, string) error { return nil }
func (Nop) Delete(context.Context, ...string) error                    { return nil }
