package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestStore(maxAttempts int, window time.Duration) (*MemoryStore, *time.Time) {
	store := NewMemoryStore(maxAttempts, window)
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	return store, &current
}

func TestLimiter_LocksAfterMaxFailures(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(3, 5*time.Minute)
	limiter := NewLimiter(store)

	for i := 0; i < 2; i++ {
		limiter.RecordFailure("1.2.3.4")
		locked, _ := limiter.IsLockedOut("1.2.3.4")
		assert.False(t, locked, "attempt %d should not lock", i+1)
	}

	limiter.RecordFailure("1.2.3.4")
	locked, retryIn := limiter.IsLockedOut("1.2.3.4")
	assert.True(t, locked)
	assert.Greater(t, retryIn, time.Duration(0))
}

func TestLimiter_WindowExpires(t *testing.T) {
	t.Parallel()

	store, current := newTestStore(3, 5*time.Minute)
	limiter := NewLimiter(store)

	for i := 0; i < 3; i++ {
		limiter.RecordFailure("1.2.3.4")
	}
	locked, _ := limiter.IsLockedOut("1.2.3.4")
	assert.True(t, locked)

	*current = current.Add(5*time.Minute + time.Second)
	locked, _ = limiter.IsLockedOut("1.2.3.4")
	assert.False(t, locked, "lockout should expire with the window")
}

func TestLimiter_ResetClearsFailures(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(3, 5*time.Minute)
	limiter := NewLimiter(store)

	for i := 0; i < 3; i++ {
		limiter.RecordFailure("1.2.3.4")
	}
	limiter.Reset("1.2.3.4")

	locked, _ := limiter.IsLockedOut("1.2.3.4")
	assert.False(t, locked)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(3, 5*time.Minute)
	limiter := NewLimiter(store)

	for i := 0; i < 3; i++ {
		limiter.RecordFailure("1.2.3.4")
	}

	locked, _ := limiter.IsLockedOut("5.6.7.8")
	assert.False(t, locked, "other clients must not be affected")
}
