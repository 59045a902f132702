package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/callbridgesewa-spec/Callbridge-Sewa/internal/config"

	"github.com/go-redis/redis/v8"
)

// Common cache errors
var ErrCacheMiss = fmt.Errorf("cache miss")

// Cache keys
const (
	KeyBadgeCounts = "badge_counts"
)

// CacheService provides caching functionality using Redis
type CacheService struct {
	client *redis.Client
	config *config.Config
}

// NewCacheService creates a new cache service
func NewCacheService(client *redis.Client, config *config.Config) *CacheService {
	return &CacheService{
		client: client,
		config: config,
	}
}

// Enabled reports whether caching is turned on
func (cs *CacheService) Enabled() bool {
	return cs.config.Cache.Enabled
}

// Get retrieves a value from cache
func (cs *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := cs.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache key %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to unmarshal cached value for key %s: %w", key, err)
	}

	return nil
}

// Set stores a value in cache with expiration
func (cs *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if err := cs.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}

	return nil
}

// Delete removes a key from cache
func (cs *CacheService) Delete(ctx context.Context, key string) error {
	if err := cs.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %w", key, err)
	}
	return nil
}

// BadgeCountTTL returns the configured badge count expiry
func (cs *CacheService) BadgeCountTTL() time.Duration {
	return time.Duration(cs.config.Cache.BadgeCountTTL) * time.Second
}

// BuildUserKey builds a cache key for one user
func (cs *CacheService) BuildUserKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
