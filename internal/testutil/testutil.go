// Package testutil holds helpers shared by integration and end-to-end tests.
package testutil

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// EnvOrDefault returns the environment variable key, or fallback when unset.
func EnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// NewRedisClient connects to REDIS_URL, skipping the test when it is unset.
// The client is closed when the test ends.
func NewRedisClient(t testing.TB) *redis.Client {
	t.Helper()

	opt, err := redis.ParseURL(RequireEnv(t, "REDIS_URL"))
	if err != nil {
		t.Fatalf("parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Fatalf("ping redis: %v", err)
	}

	t.Cleanup(func() { _ = client.Close() })
	return client
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

var subjectSeq atomic.Uint64

// UniqueSubject returns a rate limit subject no other test uses.
func UniqueSubject(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, subjectSeq.Add(1), strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// Retry repeats fn until it returns true or attempts run out, sleeping wait
// between attempts. It reports whether fn succeeded.
func Retry(attempts int, wait time.Duration, fn func() bool) bool {
	for i := range attempts {
		if fn() {
			return true
		}
		if i < attempts-1 {
			time.Sleep(wait)
		}
	}
	return false
}

// IsInjectedFault reports whether status is one the challenge injects on
// purpose from level 4 on.
func IsInjectedFault(status int) bool {
	switch status {
	case http.StatusInternalServerError,
		http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusInsufficientStorage,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
