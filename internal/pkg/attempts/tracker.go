// Package attempts tracks failed admin logins per normalized email and
// reports when an account is temporarily locked.
package attempts

import (
	"context"
	"math"
	"time"
)

const (
	DefaultMaxFailures = 5
	DefaultWindow      = 15 * time.Minute
)

// Status is the lockout state of one key.
type Status struct {
	Failures  int
	Locked    bool
	Remaining time.Duration
}

// RemainingMinutes rounds the remaining lockout up to whole minutes.
func (s Status) RemainingMinutes() int {
	if !s.Locked || s.Remaining <= 0 {
		return 0
	}
	return int(math.Ceil(s.Remaining.Minutes()))
}

// Tracker is implemented by the in-process and Redis stores.
type Tracker interface {
	// Check returns the current status, purging entries whose window elapsed.
	Check(ctx context.Context, key string) (Status, error)
	// RecordFailure counts one failed attempt stamped now.
	RecordFailure(ctx context.Context, key string) (Status, error)
	// Reset forgets key.
	Reset(ctx context.Context, key string) error
}
