// Package cache is a small read-through cache for read-mostly reference data
// (areas, rooms, styles, colors). It stays disabled unless REDIS_ADDR is set,
// so local development and tests run without a Redis instance.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Connect initializes the Redis client when REDIS_ADDR is configured.
func Connect() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}
	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		client = nil
		return
	}
	log.Println("redis connected")
}

// GetJSON loads a cached value into dest. Returns false on miss or when the
// cache is disabled.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if client == nil {
		return false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores a value under key with a TTL. Failures are ignored; the
// database remains the source of truth.
func SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}
