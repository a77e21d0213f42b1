package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Idle buckets are swept once the table grows past maxLocalEntries.
const (
	maxLocalEntries = 10000
	localIdleTTL    = time.Minute
)

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalStore keeps token buckets in process memory.
type LocalStore struct {
	mu      sync.Mutex
	buckets map[string]*localBucket
	rate    rate.Limit
	burst   int
	now     func() time.Time
}

// NewLocalStore creates a Limiter allowing ratePerSecond requests per client
// with bursts up to burst.
func NewLocalStore(ratePerSecond, burst int) *LocalStore {
	return &LocalStore{
		buckets: make(map[string]*localBucket),
		rate:    rate.Limit(ratePerSecond),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow checks and updates the bucket of subject. It never returns an error.
func (s *LocalStore) Allow(_ context.Context, subject string) (*Result, error) {
	key := hashSubject(subject)
	now := s.now()

	s.mu.Lock()
	b, ok := s.buckets[key]
	if !ok {
		if len(s.buckets) >= maxLocalEntries {
			s.sweep(now)
		}
		b = &localBucket{limiter: rate.NewLimiter(s.rate, s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	reservation := b.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)
	}
	remaining := int64(b.limiter.TokensAt(now))
	s.mu.Unlock()

	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:    delay == 0,
		Limit:      s.burst,
		Remaining:  remaining,
		ResetAt:    now.Add(time.Duration(float64(time.Second) / float64(s.rate))),
		RetryAfter: delay,
	}, nil
}

// sweep drops idle buckets. Callers hold s.mu.
func (s *LocalStore) sweep(now time.Time) {
	for key, b := range s.buckets {
		if now.Sub(b.lastSeen) > localIdleTTL {
			delete(s.buckets, key)
		}
	}
}
