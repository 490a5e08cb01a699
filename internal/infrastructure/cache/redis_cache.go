package cache

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"pesquisa_precos/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores reference data in Redis. Keys live for the TTL handed in
// by the caller; a missing key is a miss, never an error.

type RedisCache struct {
	client *redis.Client
}

var _ interfaces.IReferenceCache = (*RedisCache)(nil)

// NewRedisCache connects using environment variables:
//   - REDIS_ADDR (e.g. localhost:6379)
//   - REDIS_PASSWORD (optional)
//
// Returns an error when REDIS_ADDR is unset or the server does not answer a
// ping, so the caller can fall back to the in-memory cache.
func NewRedisCache(ctx context.Context) (*RedisCache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, errors.New("missing REDIS_ADDR")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("[cache][redis] connected addr=%s", addr)
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
