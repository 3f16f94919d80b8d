// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"resortly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// SnapshotCacheClient is the dedicated client for advisory capacity snapshots.
	SnapshotCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitSnapshotCache initializes the Redis client used for capacity snapshots.
// Snapshots are advisory; the cache shares the generic DB but keeps its own
// client so booking traffic does not contend with general caching.
func InitSnapshotCache() {
	SnapshotCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SnapshotCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Snapshot Cache): %v", err)
	}
}

// GetSnapshotCacheClient returns the Redis client for capacity snapshots.
func GetSnapshotCacheClient() *redis.Client {
	if SnapshotCacheClient == nil {
		InitSnapshotCache()
	}
	return SnapshotCacheClient
}
