package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AaronYuan9527/youtube-influencer-analytics/pkg/hash"
)

// ReportCacheTTL bounds how long a generated report serves repeat requests
// with the same parameter tuple. Keeps quota spend flat under bursty load.
const ReportCacheTTL = 15 * time.Minute

// CacheService provides a Redis cache-aside layer for generated reports.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetReport retrieves a cached report payload for the given parameter key.
// Returns nil if not cached or cache is disabled.
func (c *CacheService) GetReport(ctx context.Context, paramsKey string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, reportKey(paramsKey)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetReport stores a report payload under the given parameter key.
func (c *CacheService) SetReport(ctx context.Context, paramsKey string, report interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, reportKey(paramsKey), b, ReportCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// reportKey hashes the parameter tuple so Redis keys stay short and free of
// user-controlled characters.
func reportKey(paramsKey string) string {
	return "top100:" + hash.KeyPrefix(paramsKey, 16)
}
