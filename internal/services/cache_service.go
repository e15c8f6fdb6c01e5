package services

import (
	"context"
	"time"

	"firstcab/pkg/logger"
)

// CacheService covers the read-through caching the repositories do:
// get, set with a TTL, invalidate, plus a health check.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}

// RedisClient is the subset of the redis wrapper the cache service needs.
type RedisClient interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}

type cacheService struct {
	redisClient RedisClient
	logger      *logger.Logger
	keyPrefix   string
	defaultTTL  time.Duration
}

func NewCacheService(redisClient RedisClient, logger *logger.Logger, keyPrefix string, defaultTTL time.Duration) CacheService {
	return &cacheService{
		redisClient: redisClient,
		logger:      logger,
		keyPrefix:   keyPrefix,
		defaultTTL:  defaultTTL,
	}
}

func (s *cacheService) buildKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}
	return s.keyPrefix + ":" + key
}

func (s *cacheService) Get(ctx context.Context, key string, dest interface{}) error {
	return s.redisClient.Get(ctx, s.buildKey(key), dest)
}

func (s *cacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if expiration == 0 {
		expiration = s.defaultTTL
	}

	if err := s.redisClient.Set(ctx, s.buildKey(key), value, expiration); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to set cache key")
		return err
	}

	return nil
}

func (s *cacheService) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.buildKey(key)
	}
	return s.redisClient.Delete(ctx, prefixed...)
}

func (s *cacheService) Exists(ctx context.Context, key string) (bool, error) {
	return s.redisClient.Exists(ctx, s.buildKey(key))
}

func (s *cacheService) Ping(ctx context.Context) error {
	return s.redisClient.Ping(ctx)
}
