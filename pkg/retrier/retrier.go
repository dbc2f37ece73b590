package retrier

import (
	"context"
	"time"
)

// Retrier re-executes fn per its policy until success, a permanent error, or
// context cancellation.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Nil means every error is retried; otherwise only errors for which
	// the function returns true.
	ShouldRetry ShouldRetryFunc
}
