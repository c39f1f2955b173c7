package ratelimiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Store keeps a limiter per key and forgets keys idle for longer than the
// idle TTL.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry

	limit        rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
	now          func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIdleTTL sets how long an unused key is kept. Default 10m.
func WithIdleTTL(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.idleTTL = d
		}
	}
}

// WithCleanupInterval sets how often RunJanitor sweeps. Default 1m.
func WithCleanupInterval(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.cleanupEvery = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore allows rps requests per second per key with the given burst.
func NewStore(rps float64, burst int, opts ...StoreOption) *Store {
	s := &Store{
		entries:      make(map[string]*entry),
		limit:        rate.Limit(rps),
		burst:        burst,
		idleTTL:      10 * time.Minute,
		cleanupEvery: time.Minute,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Limiter returns the limiter for key, creating it on first use.
func (s *Store) Limiter(key string) *rate.Limiter {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.lastSeen = now
		return e.limiter
	}
	lim := rate.NewLimiter(s.limit, s.burst)
	s.entries[key] = &entry{limiter: lim, lastSeen: now}
	return lim
}

// Allow reports whether a request for key may proceed now and, when it may
// not, how long the client should wait.
func (s *Store) Allow(key string) (bool, time.Duration) {
	now := s.now()
	res := s.Limiter(key).ReserveN(now, 1)
	if !res.OK() {
		return false, 0
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Len returns the number of tracked keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup drops keys idle for longer than the idle TTL.
func (s *Store) Cleanup() {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, key)
		}
	}
}

// RunJanitor calls Cleanup periodically until ctx is done.
func (s *Store) RunJanitor(ctx context.Context) {
	t := time.NewTicker(s.cleanupEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Cleanup()
		}
	}
}
