package limiter

import (
	"context"
	"time"
)

// Limiter throttles repeated failed logins per key (client IP).
type Limiter interface {
	// Allow reports whether key may attempt a login, and how long to wait if not.
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
	Failure(ctx context.Context, key string) error
	Success(ctx context.Context, key string) error
}

// Noop never blocks.
type Noop struct{}

func (Noop) Allow(context.Context, string) (bool, time.Duration, error) { return true, 0, nil }
func (Noop) Failure(context.Context, string) error                     { return nil }
func (Noop) Success(context.Context, string) error                     { return nil }

var _ Limiter = Noop{}
