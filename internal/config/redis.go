package config

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns a client for REDIS_ADDR, or nil when redis is not
// configured. Callers are expected to fall back to in-process alternatives.
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}
