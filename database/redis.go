package database

import (
	"CarePulse/config"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// ErrNotLockOwner is returned when releasing a lock held by someone else.
var ErrNotLockOwner = errors.New("lock release failed: not the lock owner")

const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

var releaseScript = redis.NewScript(releaseLockScript)

// NewRedisClient creates a Redis client with the provided configuration
func NewRedisClient(ctx context.Context, url string, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = cfg.PoolSize
	opt.MinIdleConns = cfg.MinIdleConns
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.MaxRetries = cfg.MaxRetries

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis server: %w", err)
	}

	log.Info().
		Int("pool_size", cfg.PoolSize).
		Int("min_idle_conns", cfg.MinIdleConns).
		Dur("dial_timeout", cfg.DialTimeout).
		Dur("read_timeout", cfg.ReadTimeout).
		Int("max_retries", cfg.MaxRetries).
		Msg("redis client initialized")
	return client, nil
}

// NewLock acquires a distributed lock using Redis
func NewLock(ctx context.Context, client *redis.Client, key, value string, ttl time.Duration) (bool, error) {
	if client == nil {
		return false, errors.New("Redis client is not initialized")
	}
	return client.SetNX(ctx, key, value, ttl).Result()
}

// ReleaseLock releases a distributed lock if value still owns it.
func ReleaseLock(ctx context.Context, client *redis.Client, key, value string) error {
	if client == nil {
		return errors.New("Redis client is not initialized")
	}

	result, err := releaseScript.Run(ctx, client, []string{key}, value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrNotLockOwner
	}
	return nil
}

// MonitorRedisPool logs the connection pool statistics
func MonitorRedisPool(client *redis.Client) {
	stats := client.PoolStats()
	log.Debug().
		Uint32("total", stats.TotalConns).
		Uint32("idle", stats.IdleConns).
		Uint32("stale", stats.StaleConns).
		Msg("redis pool stats")
}
