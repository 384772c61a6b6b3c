package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	created := time.Date(2025, 7, 9, 18, 0, 0, 0, time.UTC)
	data, err := Encode(Entry{Text: "Ben is a baseline grinder.", CreatedAt: created})
	require.NoError(t, err)

	entry, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Ben is a baseline grinder.", entry.Text)
	assert.True(t, created.Equal(entry.CreatedAt))
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte{0xc1})
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	c := NewNoop()
	require.NoError(t, c.Set(context.Background(), "k", "v"))

	_, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := NewRedis(client, time.Minute)

	_, ok, err := c.Get(context.Background(), "player:ben johns")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "player:ben johns", "text"))
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-url")
	assert.Error(t, err)
}
