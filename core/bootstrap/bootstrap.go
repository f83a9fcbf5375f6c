package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/tally/core/logger"
	"github.com/dmitrymomot/tally/pkg/async"
	"github.com/dmitrymomot/tally/pkg/handle"
)

// Dialer makes a single connection attempt.
type Dialer[T any] func(ctx context.Context) (T, error)

// Bootstrap runs a Dialer under a bounded attempt budget and publishes the
// first successful result to a handle.
type Bootstrap[T any] struct {
	dial   Dialer[T]
	handle *handle.Handle[T]
	opts   options
}

// New creates a Bootstrap that publishes into h.
func New[T any](dial Dialer[T], h *handle.Handle[T], opts ...Option) *Bootstrap[T] {
	o := options{
		attempts: DefaultAttempts,
		interval: DefaultInterval,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Bootstrap[T]{dial: dial, handle: h, opts: o}
}

// Start runs Connect in the background and returns immediately.
// The future resolves with the published value, ErrAttemptsExhausted, or the
// context error if ctx is cancelled first.
func (b *Bootstrap[T]) Start(ctx context.Context) *async.Future[T] {
	return async.Go(ctx, b.Connect)
}

// Connect dials until an attempt succeeds or the budget runs out, waiting the
// configured interval between attempts. On success the value is published to
// the handle before Connect returns.
func (b *Bootstrap[T]) Connect(ctx context.Context) (T, error) {
	var (
		zero    T
		result  T
		attempt int
		start   = time.Now()
	)

	log := b.opts.logger.With(logger.Component("bootstrap"))

	backoff := b.observe(ctx, log, &attempt,
		retry.WithMaxRetries(uint64(b.opts.attempts-1), retry.NewConstant(b.opts.interval)),
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		v, err := b.dial(ctx)
		if err != nil {
			log.WarnContext(ctx, "connection attempt failed",
				slog.Int("attempt", attempt),
				slog.Int("remaining", b.opts.attempts-attempt),
				logger.Error(err),
			)
			return retry.RetryableError(err)
		}
		result = v
		return nil
	})
	if err != nil {
		// A dial interrupted by cancellation is not a spent budget.
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.InfoContext(ctx, "connection bootstrap cancelled", slog.Int("attempt", attempt), logger.Error(err))
			return zero, ctxErr
		}
		log.ErrorContext(ctx, "could not connect after retries",
			slog.Int("attempts", attempt),
			logger.Error(err),
		)
		return zero, errors.Join(ErrAttemptsExhausted, err)
	}

	if _, replaced := b.handle.Set(result); replaced {
		log.WarnContext(ctx, "replaced previously published connection")
	}
	log.InfoContext(ctx, "connected",
		logger.Event("connected"),
		slog.Int("attempt", attempt),
		logger.Duration(time.Since(start)),
	)

	return result, nil
}

// observe wraps a backoff so every scheduled wait is logged and reported to the retry hook.
func (b *Bootstrap[T]) observe(ctx context.Context, log *slog.Logger, attempt *int, next retry.Backoff) retry.Backoff {
	return retry.BackoffFunc(func() (time.Duration, bool) {
		delay, stop := next.Next()
		if stop {
			return 0, true
		}
		log.InfoContext(ctx, "retrying connection",
			logger.RetryCount(*attempt),
			slog.Duration("delay", delay),
			slog.Int("remaining", b.opts.attempts-*attempt),
		)
		if b.opts.onRetry != nil {
			b.opts.onRetry(*attempt, delay)
		}
		return delay, false
	})
}
