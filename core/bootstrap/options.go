package bootstrap

import (
	"log/slog"
	"time"
)

const (
	// DefaultAttempts is the default attempt budget.
	DefaultAttempts = 5

	// DefaultInterval is the default wait between attempts.
	DefaultInterval = 3 * time.Second
)

// Option configures a Bootstrap.
type Option func(*options)

type options struct {
	attempts int
	interval time.Duration
	logger   *slog.Logger
	onRetry  func(attempt int, delay time.Duration)
}

// WithAttempts sets the total number of dial attempts. Values below 1 are ignored.
func WithAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.attempts = n
		}
	}
}

// WithInterval sets the fixed wait between attempts. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithLogger sets the logger used for attempt and outcome records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRetryHook registers fn to be called right before each wait, with the
// number of the attempt that just failed and the delay about to be slept.
func WithRetryHook(fn func(attempt int, delay time.Duration)) Option {
	return func(o *options) {
		o.onRetry = fn
	}
}
