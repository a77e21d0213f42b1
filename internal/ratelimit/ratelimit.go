// Package ratelimit provides per-client token buckets for the public API.
//
// Two stores are available: Redis, shared by every instance behind a load
// balancer, and an in-process store for single-instance deployments.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Limiter decides whether subject may make another request.
type Limiter interface {
	Allow(ctx context.Context, subject string) (*Result, error)
}

// hashSubject creates a truncated SHA256 hash of a client identifier so raw
// IP addresses are never used as storage keys.
func hashSubject(subject string) string {
	hash := sha256.Sum256([]byte(subject))
	return hex.EncodeToString(hash[:8])
}
