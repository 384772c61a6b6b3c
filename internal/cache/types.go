package cache

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every summary key in Redis.
const KeyPrefix = "rally:summary:"

// Entry is the msgpack-encoded value stored for each key.
type Entry struct {
	Text      string    `msgpack:"text"`
	CreatedAt time.Time `msgpack:"created_at"`
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopCache struct{}
