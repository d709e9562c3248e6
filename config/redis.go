package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when Redis is not configured or unreachable; the
// caller then keeps carts in process memory and serves the menu uncached.
func ConnectRedis(ctx context.Context, cfg *Config) *redis.Client {
	var opt *redis.Options
	switch {
	case cfg.RedisURL != "":
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without Redis")
			return nil
		}
		opt = parsed
	case cfg.RedisAddr != "":
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	default:
		log.Println("Redis not configured, running without Redis")
		return nil
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without Redis")
		client.Close()
		return nil
	}

	log.Println("Redis connected")
	return client
}

func CloseRedis(client *redis.Client) {
	if client != nil {
		client.Close()
	}
}
