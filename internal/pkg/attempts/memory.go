package attempts

import (
	"context"
	"sync"
	"time"
)

// sweepThreshold bounds map growth from never-repeated keys.
const sweepThreshold = 10000

type record struct {
	failures    int
	lastAttempt time.Time
}

// MemoryTracker keeps counters in process memory. Each process enforces its
// own threshold; use RedisTracker when running more than one instance.
type MemoryTracker struct {
	mu          sync.Mutex
	records     map[string]*record
	maxFailures int
	window      time.Duration
	now         func() time.Time
}

func NewMemoryTracker(maxFailures int, window time.Duration) *MemoryTracker {
	return &MemoryTracker{
		records:     make(map[string]*record),
		maxFailures: maxFailures,
		window:      window,
		now:         time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (t *MemoryTracker) SetClock(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}

func (t *MemoryTracker) Check(_ context.Context, key string) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[key]
	if !ok {
		return Status{}, nil
	}

	since := t.now().Sub(rec.lastAttempt)
	if since > t.window {
		delete(t.records, key)
		return Status{}, nil
	}

	return t.statusOf(rec, since), nil
}

func (t *MemoryTracker) RecordFailure(_ context.Context, key string) (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	rec, ok := t.records[key]
	if !ok || now.Sub(rec.lastAttempt) > t.window {
		rec = &record{}
		t.records[key] = rec
	}
	rec.failures++
	rec.lastAttempt = now

	if len(t.records) > sweepThreshold {
		t.sweepLocked(now)
	}

	return t.statusOf(rec, 0), nil
}

func (t *MemoryTracker) Reset(_ context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.records, key)
	return nil
}

// Len reports how many keys are tracked.
func (t *MemoryTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

func (t *MemoryTracker) statusOf(rec *record, since time.Duration) Status {
	st := Status{Failures: rec.failures}
	if rec.failures >= t.maxFailures {
		st.Locked = true
		st.Remaining = t.window - since
	}
	return st
}

func (t *MemoryTracker) sweepLocked(now time.Time) {
	for k, rec := range t.records {
		if now.Sub(rec.lastAttempt) > t.window {
			delete(t.records, k)
		}
	}
}
