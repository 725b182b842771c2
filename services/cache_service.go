package services

import (
	"context"
	"encoding/json"
	"errors"
	"printdoot_server/config"
	"printdoot_server/structs"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// CacheService provides Redis caching with JSON serialization. Cache failures
// are never fatal to the caller; a miss is returned instead.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// Ping checks the Redis connection health
func (cs *CacheService) Ping(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

// Set stores a JSON-serialized value under key with a TTL
func (cs *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		cs.logger.Warn("Failed to marshal cache value", gecho.Field("key", key), gecho.Field("error", err))
		return
	}

	if err := cs.client.Set(ctx, key, data, ttl).Err(); err != nil {
		cs.logger.Warn("Failed to set cache key", gecho.Field("key", key), gecho.Field("error", err))
	}
}

// Get loads a JSON value into dest. Returns false on a miss or any cache error.
func (cs *CacheService) Get(ctx context.Context, key string, dest any) bool {
	data, err := cs.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cs.logger.Warn("Failed to get cache key", gecho.Field("key", key), gecho.Field("error", err))
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		cs.logger.Warn("Failed to unmarshal cache value", gecho.Field("key", key), gecho.Field("error", err))
		return false
	}

	return true
}

// Delete removes keys from the cache
func (cs *CacheService) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := cs.client.Del(ctx, keys...).Err(); err != nil {
		cs.logger.Warn("Failed to delete cache keys", gecho.Field("keys", keys), gecho.Field("error", err))
	}
}

// ProductCacheKey is the cache key for a product looked up by its public code
func ProductCacheKey(productID string) string {
	return "product:" + productID
}
