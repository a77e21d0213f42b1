//go:build integration

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/usagechallenge/challenge/internal/testutil"
)

func TestIntegrationRedisStore_BurstThenReject(t *testing.T) {
	client := testutil.NewRedisClient(t)
	ctx := context.Background()

	store, err := NewRedisStore(client, 1, 3)
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	now := time.Now()
	store.now = func() time.Time { return now }

	subject := testutil.UniqueSubject("burst")
	for i := range 3 {
		res, err := store.Allow(ctx, subject)
		if err != nil {
			t.Fatalf("Allow %d: %v", i, err)
		}
		if !res.Allowed {
			t.Fatalf("request %d rejected inside burst", i)
		}
		if res.Remaining != int64(2-i) {
			t.Errorf("request %d: Remaining = %d, want %d", i, res.Remaining, 2-i)
		}
	}

	res, err := store.Allow(ctx, subject)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if res.Allowed {
		t.Fatal("request past burst was allowed")
	}
	if res.RetryAfter <= 0 || res.RetryAfter > time.Second {
		t.Errorf("RetryAfter = %v, want (0, 1s]", res.RetryAfter)
	}

	// One second refills one token.
	now = now.Add(time.Second)
	res, err = store.Allow(ctx, subject)
	if err != nil {
		t.Fatalf("Allow after refill: %v", err)
	}
	if !res.Allowed {
		t.Error("request after refill was rejected")
	}
}

func TestIntegrationRedisStore_SubjectsAreIndependent(t *testing.T) {
	client := testutil.NewRedisClient(t)
	ctx := context.Background()

	store, err := NewRedisStore(client, 1, 1)
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}

	a, b := testutil.UniqueSubject("a"), testutil.UniqueSubject("b")
	for _, subject := range []string{a, b} {
		res, err := store.Allow(ctx, subject)
		if err != nil {
			t.Fatalf("Allow(%s): %v", subject, err)
		}
		if !res.Allowed {
			t.Errorf("first request of %s rejected", subject)
		}
	}

	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
