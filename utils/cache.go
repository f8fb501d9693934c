package utils

import (
	"context"
	"log"
	"time"

	"docportal/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client used for availability responses.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. The cache is an optimization
// layer only; when Redis is unreachable the client stays nil and callers fall
// back to store reads.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis cache unavailable, availability caching disabled: %v", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the generic cache client. May be nil when Redis is
// unavailable.
func GetCacheClient() *redis.Client {
	return CacheClient
}
