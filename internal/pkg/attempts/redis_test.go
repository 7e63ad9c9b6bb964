package attempts

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisTracker(t *testing.T) (*RedisTracker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTracker(client, DefaultMaxFailures, DefaultWindow), mr
}

func TestRedisTrackerLocksAndExpires(t *testing.T) {
	ctx := context.Background()
	tr, mr := newRedisTracker(t)

	st, err := tr.Check(ctx, "a@b.co")
	require.NoError(t, err)
	assert.False(t, st.Locked)

	for i := 0; i < DefaultMaxFailures; i++ {
		st, err = tr.RecordFailure(ctx, "a@b.co")
		require.NoError(t, err)
	}
	assert.True(t, st.Locked)

	mr.FastForward(5 * time.Minute)
	st, err = tr.Check(ctx, "a@b.co")
	require.NoError(t, err)
	assert.True(t, st.Locked)
	assert.Equal(t, 10, st.RemainingMinutes())

	mr.FastForward(DefaultWindow)
	st, err = tr.Check(ctx, "a@b.co")
	require.NoError(t, err)
	assert.False(t, st.Locked)
}

func TestRedisTrackerFailureRefreshesWindow(t *testing.T) {
	ctx := context.Background()
	tr, mr := newRedisTracker(t)

	_, err := tr.RecordFailure(ctx, "a@b.co")
	require.NoError(t, err)
	mr.FastForward(10 * time.Minute)
	_, err = tr.RecordFailure(ctx, "a@b.co")
	require.NoError(t, err)
	mr.FastForward(10 * time.Minute)

	st, err := tr.Check(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Failures)
}

func TestRedisTrackerReset(t *testing.T) {
	ctx := context.Background()
	tr, _ := newRedisTracker(t)

	for i := 0; i < DefaultMaxFailures; i++ {
		_, err := tr.RecordFailure(ctx, "a@b.co")
		require.NoError(t, err)
	}
	require.NoError(t, tr.Reset(ctx, "a@b.co"))

	st, err := tr.Check(ctx, "a@b.co")
	require.NoError(t, err)
	assert.False(t, st.Locked)
	assert.Zero(t, st.Failures)
}
