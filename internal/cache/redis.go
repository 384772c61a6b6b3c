package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a cache backed by client. Entries expire after ttl.
func NewRedis(client *redis.Client, ttl time.Duration) SummaryCache {
	return &redisCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and returns a connected client.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("Connected to Redis", "addr", opts.Addr)
	return client, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read summary %s: %w", key, err)
	}
	entry, err := Decode(data)
	if err != nil {
		return "", false, err
	}
	return entry.Text, true, nil
}

func (c *redisCache) Set(ctx context.Context, key, text string) error {
	data, err := Encode(Entry{Text: text, CreatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, KeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", key, err)
	}
	return nil
}
