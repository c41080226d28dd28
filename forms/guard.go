package forms

import (
	"CarePulse/database"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

var ErrSubmissionInFlight = errors.New("a submission for this form is already in progress")

// Guard is the loading flag of a form. Acquire fails with
// ErrSubmissionInFlight while another submission holds key; the returned
// release func must be called once the submission ends.
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// RedisGuard shares the flag between instances through a Redis lock.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisGuard returns a guard holding flags in Redis for at most ttl.
func NewRedisGuard(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl, logger: logger}
}

// Acquire takes the Redis lock for key. Release deletes it only while the
// stored value is still ours.
func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := "submission_lock:" + key
	value := uuid.New().String()

	acquired, err := database.NewLock(ctx, g.client, lockKey, value, g.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire submission lock: %w", err)
	}
	if !acquired {
		return nil, ErrSubmissionInFlight
	}

	return func() {
		// The request context may already be done.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.ReleaseLock(releaseCtx, g.client, lockKey, value); err != nil {
			g.logger.Warn().Err(err).Str("key", lockKey).Msg("failed to release submission lock")
		}
	}, nil
}

// LocalGuard keeps the flag in process memory. Entries expire after ttl so
// a crashed submission cannot block a form forever.
type LocalGuard struct {
	mu      sync.Mutex
	entries *gocache.Cache
	ttl     time.Duration
}

// NewLocalGuard returns a guard whose flags expire after ttl.
func NewLocalGuard(ttl time.Duration) *LocalGuard {
	return &LocalGuard{entries: gocache.New(ttl, 2*ttl), ttl: ttl}
}

// Acquire sets the flag for key. The release func clears it only while it
// still belongs to this call; a flag that expired and was taken by a later
// submission is left alone.
func (g *LocalGuard) Acquire(_ context.Context, key string) (func(), error) {
	token := uuid.New().String()

	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.entries.Add(key, token, g.ttl); err != nil {
		return nil, ErrSubmissionInFlight
	}
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if held, ok := g.entries.Get(key); ok && held == token {
			g.entries.Delete(key)
		}
	}, nil
}
