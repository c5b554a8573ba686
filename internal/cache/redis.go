// Package cache holds rendered page HTML in Redis, keyed by request path.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg Config) (*PageCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if cfg.TTL == 0 {
		cfg.TTL = time.Hour
	}

	return &PageCache{client: client, ttl: cfg.TTL}, nil
}

func key(path string) string {
	return "page:" + path
}

// Get returns the cached body for a path and whether it was present.
func (c *PageCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read page cache: %w", err)
	}
	return body, true, nil
}

func (c *PageCache) Set(ctx context.Context, path string, body []byte) error {
	if err := c.client.Set(ctx, key(path), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write page cache: %w", err)
	}
	return nil
}

// Purge drops the cached body for a path. Deleting an absent key is a no-op,
// so purging is idempotent.
func (c *PageCache) Purge(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, key(path)).Err(); err != nil {
		return fmt.Errorf("failed to purge %s: %w", path, err)
	}
	return nil
}

func (c *PageCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *PageCache) Close() error {
	return c.client.Close()
}
