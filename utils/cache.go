// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"eventhorizon/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache is the read-through cache collaborator injected into services. Keys
// are namespaced by prefix (see constants.go); Flush clears one namespace.
// Implementations are best-effort: a failed Get is a miss, a failed Set is
// dropped, and callers never see cache errors.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Flush(ctx context.Context, prefix string)
}

// CacheClient is the shared Redis client for query caching.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Call only when REDIS_ADDR is
// configured; without Redis the app uses the in-process cache instead.
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

// GetCacheClient returns the shared Redis cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// NewQueryCache returns the configured cache backend: Redis when REDIS_ADDR
// is set, otherwise an in-process LRU bounded by CACHE_CAPACITY.
func NewQueryCache() Cache {
	if config.AppConfig.RedisAddr == "" {
		return NewMemoryCache(config.AppConfig.CacheCapacity)
	}
	return NewRedisCache(GetCacheClient())
}

// RedisCache implements Cache on a Redis client.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			GetLogger().Debug("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		GetLogger().Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		GetLogger().Debug("cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Flush removes every key under the given prefix. SCAN keeps this safe on a
// shared Redis DB.
func (c *RedisCache) Flush(ctx context.Context, prefix string) {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			GetLogger().Debug("cache flush delete failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		GetLogger().Debug("cache flush scan failed", zap.String("prefix", prefix), zap.Error(err))
	}
}
