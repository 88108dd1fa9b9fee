package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gracechapel/church-management-backend/config"
)

var rdb *redis.Client

func InitRedis(cfg *config.Config) error {
	rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}

// UseRedisClient swaps the package client; tests point it at miniredis.
func UseRedisClient(c *redis.Client) { rdb = c }

func SetToken(key, value string, ttl time.Duration) error {
	return rdb.Set(context.Background(), key, value, ttl).Err()
}

func GetToken(key string) (string, error) {
	return rdb.Get(context.Background(), key).Result()
}

func DeleteToken(key string) error {
	return rdb.Del(context.Background(), key).Err()
}
