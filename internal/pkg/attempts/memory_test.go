package attempts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker() (*MemoryTracker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	tr := NewMemoryTracker(DefaultMaxFailures, DefaultWindow)
	tr.SetClock(clock.now)
	return tr, clock
}

func TestMemoryTrackerUnknownKeyIsClear(t *testing.T) {
	tr, _ := newTestTracker()

	st, err := tr.Check(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.False(t, st.Locked)
	assert.Zero(t, st.Failures)
}

func TestMemoryTrackerLocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	tr, clock := newTestTracker()

	for i := 1; i < DefaultMaxFailures; i++ {
		st, err := tr.RecordFailure(ctx, "a@b.co")
		require.NoError(t, err)
		assert.False(t, st.Locked, "attempt %d", i)
		clock.advance(time.Minute)
	}

	st, err := tr.RecordFailure(ctx, "a@b.co")
	require.NoError(t, err)
	assert.True(t, st.Locked)

	clock.advance(4 * time.Minute)
	st, err = tr.Check(ctx, "a@b.co")
	require.NoError(t, err)
	assert.True(t, st.Locked)
	assert.Equal(t, 11*time.Minute, st.Remaining)
	assert.Equal(t, 11, st.RemainingMinutes())
}

func TestMemoryTrackerWindowElapsedPurges(t *testing.T) {
	ctx := context.Background()
	tr, clock := newTestTracker()

	for i := 0; i < DefaultMaxFailures; i++ {
		_, err := tr.RecordFailure(ctx, "a@b.co")
		require.NoError(t, err)
	}

	clock.advance(DefaultWindow + time.Second)
	st, err := tr.Check(ctx, "a@b.co")
	require.NoError(t, err)
	assert.False(t, st.Locked)
	assert.Zero(t, tr.Len())
}

func TestMemoryTrackerStaleCountRestartsOnFailure(t *testing.T) {
	ctx := context.Background()
	tr, clock := newTestTracker()

	for i := 0; i < DefaultMaxFailures-1; i++ {
		_, err := tr.RecordFailure(ctx, "a@b.co")
		require.NoError(t, err)
	}
	clock.advance(DefaultWindow + time.Minute)

	st, err := tr.RecordFailure(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Failures)
	assert.False(t, st.Locked)
}

func TestMemoryTrackerResetClears(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker()

	for i := 0; i < DefaultMaxFailures; i++ {
		_, err := tr.RecordFailure(ctx, "a@b.co")
		require.NoError(t, err)
	}
	require.NoError(t, tr.Reset(ctx, "a@b.co"))

	st, err := tr.Check(ctx, "a@b.co")
	require.NoError(t, err)
	assert.False(t, st.Locked)
}

func TestMemoryTrackerKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker()

	for i := 0; i < DefaultMaxFailures; i++ {
		_, err := tr.RecordFailure(ctx, "a@b.co")
		require.NoError(t, err)
	}

	st, err := tr.Check(ctx, "other@b.co")
	require.NoError(t, err)
	assert.False(t, st.Locked)
}

func TestRemainingMinutesRoundsUp(t *testing.T) {
	st := Status{Locked: true, Remaining: 61 * time.Second}
	assert.Equal(t, 2, st.RemainingMinutes())
	assert.Zero(t, Status{}.RemainingMinutes())
}
