// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"farmconnect/config"

	"github.com/go-redis/redis/v8"
)

// SMSCacheClient is the Redis client used to deduplicate inbound SMS
// webhook deliveries by provider message id.
var SMSCacheClient *redis.Client

// InitSMSCache initializes the Redis client for SMS dedupe (using DB from AppConfig).
func InitSMSCache() {
	SMSCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSMSDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SMSCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (SMS Cache): %v", err)
	}
}

// GetSMSCacheClient returns the Redis client for SMS dedupe.
func GetSMSCacheClient() *redis.Client {
	if SMSCacheClient == nil {
		InitSMSCache()
	}
	return SMSCacheClient
}
