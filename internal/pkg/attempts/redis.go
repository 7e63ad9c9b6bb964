package attempts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTracker shares counters between instances. Each key carries a TTL equal
// to the window, refreshed on every failure, so expiry measures from the most
// recent failed attempt.
type RedisTracker struct {
	client      redis.UniversalClient
	maxFailures int
	window      time.Duration
	prefix      string
}

func NewRedisTracker(client redis.UniversalClient, maxFailures int, window time.Duration) *RedisTracker {
	return &RedisTracker{
		client:      client,
		maxFailures: maxFailures,
		window:      window,
		prefix:      "ratelimit:login:",
	}
}

func (r *RedisTracker) Check(ctx context.Context, key string) (Status, error) {
	k := r.key(key)

	var countCmd *redis.StringCmd
	var ttlCmd *redis.DurationCmd
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		countCmd = pipe.Get(ctx, k)
		ttlCmd = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return Status{}, fmt.Errorf("failed to read login attempts: %w", err)
	}

	count, err := countCmd.Int()
	if errors.Is(err, redis.Nil) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("failed to parse login attempts: %w", err)
	}

	return r.statusOf(count, ttlCmd.Val()), nil
}

func (r *RedisTracker) RecordFailure(ctx context.Context, key string) (Status, error) {
	k := r.key(key)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.PExpire(ctx, k, r.window)
		return nil
	})
	if err != nil {
		return Status{}, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	return r.statusOf(int(incr.Val()), r.window), nil
}

func (r *RedisTracker) Reset(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}

func (r *RedisTracker) statusOf(count int, ttl time.Duration) Status {
	st := Status{Failures: count}
	if count >= r.maxFailures {
		st.Locked = true
		if ttl > 0 {
			st.Remaining = ttl
		} else {
			st.Remaining = r.window
		}
	}
	return st
}

func (r *RedisTracker) key(email string) string {
	return r.prefix + email
}
