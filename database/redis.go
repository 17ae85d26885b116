package database

import (
	"context"
	"time"

	"api/config"
	"api/logging"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// InitRedis initializes the Redis client used for standings caching.
// A failed connection disables the cache but does not prevent startup.
func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := Redis.Ping(ctx).Result(); err != nil {
		logging.Log.Warn("Redis unavailable, standings cache disabled: ", err)
		Redis = nil
		return
	}

	logging.Log.Info("Redis connection established")
}
