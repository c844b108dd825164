package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"geosuggest/config"
)

var Rdb *redis.Client

// InitRedis initializes the Redis client from configuration.
func InitRedis() error {
	cfg := config.Cfg.Redis
	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:6379"
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Check the Redis connection
	ctx := context.Background()
	_, err := Rdb.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("Connected to Redis successfully.")
	return nil
}

// GetRedisClient returns the Redis client
func GetRedisClient() *redis.Client {
	return Rdb
}
