package repositories

import (
	"CarePulse/database"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	lockTTL        = 10 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 2 * time.Second
)

// Locker serializes writes on a key across instances with a Redis lock.
type Locker struct {
	client *redis.Client
}

func NewLocker(client *redis.Client) *Locker {
	return &Locker{client: client}
}

// WithLock runs fn while holding key. Acquisition is retried a few times.
func (l *Locker) WithLock(ctx context.Context, key string, fn func() error) error {
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = database.NewLock(ctx, l.client, key, lockValue, lockTTL)
		if err == nil && locked {
			break
		}
		if i < lockMaxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(lockRetryDelay):
			}
		}
	}
	if !locked {
		if err == nil {
			err = fmt.Errorf("lock %s is held", key)
		}
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, l.client, key, lockValue); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to release lock")
		}
	}()

	return fn()
}
