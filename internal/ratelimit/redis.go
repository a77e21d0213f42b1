package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix is the Redis key prefix for client buckets.
	keyPrefix = "challenge:ratelimit:ip:"
	// keyTTL bounds how long an idle bucket is kept.
	keyTTL = 10 * time.Second
)

// tokenBucketScript refills and consumes atomically.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])      -- tokens per second
	local burst = tonumber(ARGV[2])     -- bucket capacity
	local now = tonumber(ARGV[3])       -- current time in milliseconds
	local ttl = tonumber(ARGV[4])       -- TTL in seconds

	local data = redis.call('HMGET', key, 'tokens', 'last_update')
	local tokens = tonumber(data[1]) or burst
	local last_update = tonumber(data[2]) or now

	local elapsed = math.max(0, now - last_update) / 1000
	tokens = math.min(burst, tokens + (elapsed * rate))

	local allowed = 0
	local retry_after_ms = 0

	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	else
		retry_after_ms = math.ceil((1 - tokens) / rate * 1000)
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_update', now)
	redis.call('EXPIRE', key, ttl)

	return {allowed, retry_after_ms, math.floor(tokens)}
`)

// RedisStore keeps token buckets in Redis.
type RedisStore struct {
	client *redis.Client
	rate   float64
	burst  int
	now    func() time.Time
}

// NewRedisClient parses redisURL, applies pool settings and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// NewRedisStore creates a Limiter allowing ratePerSecond requests per client
// with bursts up to burst.
func NewRedisStore(client *redis.Client, ratePerSecond, burst int) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ratePerSecond <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rate and burst must be positive")
	}
	return &RedisStore{
		client: client,
		rate:   float64(ratePerSecond),
		burst:  burst,
		now:    time.Now,
	}, nil
}

// Allow checks and updates the bucket of subject.
func (s *RedisStore) Allow(ctx context.Context, subject string) (*Result, error) {
	key := keyPrefix + hashSubject(subject)
	now := s.now()

	values, err := tokenBucketScript.Run(ctx, s.client,
		[]string{key},
		s.rate, s.burst, now.UnixMilli(), int(keyTTL.Seconds()),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("run token bucket script: %w", err)
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("invalid token bucket response: %v", values)
	}

	return &Result{
		Allowed:    values[0] == 1,
		Limit:      s.burst,
		Remaining:  values[2],
		ResetAt:    now.Add(time.Duration(float64(time.Second) / s.rate)),
		RetryAfter: time.Duration(values[1]) * time.Millisecond,
	}, nil
}

// Ping checks Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
