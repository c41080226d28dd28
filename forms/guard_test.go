package forms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGuard(t *testing.T) {
	guard := NewLocalGuard(time.Minute)
	ctx := context.Background()

	release, err := guard.Acquire(ctx, "form-a")
	require.NoError(t, err)

	_, err = guard.Acquire(ctx, "form-a")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	other, err := guard.Acquire(ctx, "form-b")
	require.NoError(t, err)
	other()

	release()
	release, err = guard.Acquire(ctx, "form-a")
	require.NoError(t, err)
	release()
}

func TestLocalGuardExpires(t *testing.T) {
	guard := NewLocalGuard(20 * time.Millisecond)
	_, err := guard.Acquire(context.Background(), "stuck")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		release, err := guard.Acquire(context.Background(), "stuck")
		if err != nil {
			return false
		}
		release()
		return true
	}, time.Second, 10*time.Millisecond)
}

func TestLocalGuardStaleReleaseKeepsNewHolder(t *testing.T) {
	guard := NewLocalGuard(200 * time.Millisecond)
	ctx := context.Background()

	stale, err := guard.Acquire(ctx, "slow")
	require.NoError(t, err)

	var current func()
	require.Eventually(t, func() bool {
		release, acquireErr := guard.Acquire(ctx, "slow")
		if acquireErr != nil {
			return false
		}
		current = release
		return true
	}, 2*time.Second, 10*time.Millisecond)

	stale()
	_, err = guard.Acquire(ctx, "slow")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	current()
	release, err := guard.Acquire(ctx, "slow")
	require.NoError(t, err)
	release()
}
