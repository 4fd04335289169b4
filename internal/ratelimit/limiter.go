package ratelimit

import (
	"sync"
	"time"
)

// Store tracks failed attempts per key. The interface exists so a shared
// store (Redis etc.) can replace the in-process map without touching the
// login flow.
type Store interface {
	// RecordAttempt registers one failed attempt for key.
	RecordAttempt(key string)
	// IsLockedOut reports whether key has exhausted its attempts and how
	// long until the window resets.
	IsLockedOut(key string) (bool, time.Duration)
	// Clear drops all attempts for key.
	Clear(key string)
}

// Limiter answers whether a caller may try again.
type Limiter struct {
	store Store
}

func NewLimiter(store Store) *Limiter {
	return &Limiter{store: store}
}

func (l *Limiter) RecordFailure(key string) {
	l.store.RecordAttempt(key)
}

func (l *Limiter) IsLockedOut(key string) (bool, time.Duration) {
	return l.store.IsLockedOut(key)
}

func (l *Limiter) Reset(key string) {
	l.store.Clear(key)
}

type attemptWindow struct {
	count       int
	windowStart time.Time
}

// MemoryStore is the in-process Store. Attempts expire together when the
// window since the first failure elapses.
type MemoryStore struct {
	mu          sync.Mutex
	attempts    map[string]*attemptWindow
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func NewMemoryStore(maxAttempts int, window time.Duration) *MemoryStore {
	return &MemoryStore{
		attempts:    make(map[string]*attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

func (s *MemoryStore) RecordAttempt(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.attempts[key]
	if !ok || now.Sub(w.windowStart) >= s.window {
		s.attempts[key] = &attemptWindow{count: 1, windowStart: now}
		return
	}
	w.count++
}

func (s *MemoryStore) IsLockedOut(key string) (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.attempts[key]
	if !ok {
		return false, 0
	}

	elapsed := s.now().Sub(w.windowStart)
	if elapsed >= s.window {
		delete(s.attempts, key)
		return false, 0
	}

	if w.count >= s.maxAttempts {
		return true, s.window - elapsed
	}
	return false, 0
}

func (s *MemoryStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, key)
}
