package bootstrap_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tally/core/bootstrap"
	"github.com/dmitrymomot/tally/pkg/handle"
)

var errUnreachable = errors.New("target unreachable")

type conn struct{ id int }

// flakyDialer fails the first n calls and then returns a connection.
func flakyDialer(n int, calls *atomic.Int32) bootstrap.Dialer[*conn] {
	return func(ctx context.Context) (*conn, error) {
		c := int(calls.Add(1))
		if c <= n {
			return nil, fmt.Errorf("attempt %d: %w", c, errUnreachable)
		}
		return &conn{id: c}, nil
	}
}

// syncBuffer is a bytes.Buffer safe for a logger shared with a background goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestConnectRetriesThenPublishes(t *testing.T) {
	t.Parallel()

	for failures := range 5 {
		t.Run(fmt.Sprintf("%d failures", failures), func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			var delays []time.Duration
			h := handle.New[*conn]()

			b := bootstrap.New(flakyDialer(failures, &calls), h,
				bootstrap.WithAttempts(5),
				bootstrap.WithInterval(time.Millisecond),
				bootstrap.WithRetryHook(func(attempt int, delay time.Duration) {
					delays = append(delays, delay)
				}),
			)

			c, err := b.Connect(context.Background())
			require.NoError(t, err)

			assert.Len(t, delays, failures, "one wait per failed attempt")
			assert.EqualValues(t, failures+1, calls.Load())

			published, ok := h.Get()
			require.True(t, ok)
			assert.Same(t, c, published)
		})
	}
}

func TestConnectExhaustsBudget(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var delays int
	h := handle.New[*conn]()

	b := bootstrap.New(flakyDialer(5, &calls), h,
		bootstrap.WithAttempts(5),
		bootstrap.WithInterval(time.Millisecond),
		bootstrap.WithRetryHook(func(int, time.Duration) { delays++ }),
	)

	c, err := b.Connect(context.Background())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, bootstrap.ErrAttemptsExhausted)
	assert.ErrorIs(t, err, errUnreachable)
	assert.Contains(t, err.Error(), "attempt 5")

	assert.EqualValues(t, 5, calls.Load())
	assert.Equal(t, 4, delays)
	assert.False(t, h.IsSet(), "no handle may be published after exhaustion")
}

func TestConnectSingleAttemptBudget(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	h := handle.New[*conn]()
	b := bootstrap.New(flakyDialer(1, &calls), h, bootstrap.WithAttempts(1), bootstrap.WithInterval(time.Millisecond))

	_, err := b.Connect(context.Background())
	assert.ErrorIs(t, err, bootstrap.ErrAttemptsExhausted)
	assert.EqualValues(t, 1, calls.Load())
}

func TestConnectCancelledDuringWait(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	h := handle.New[*conn]()

	b := bootstrap.New(flakyDialer(10, &calls), h,
		bootstrap.WithAttempts(5),
		bootstrap.WithInterval(time.Hour),
		bootstrap.WithRetryHook(func(int, time.Duration) { cancel() }),
	)

	_, err := b.Connect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, bootstrap.ErrAttemptsExhausted)
	assert.EqualValues(t, 1, calls.Load())
	assert.False(t, h.IsSet())
}

func TestConnectCancelledDuringFinalDial(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	h := handle.New[*conn]()

	// The last dial sees shutdown but reports its own error, as a driver would.
	var dial bootstrap.Dialer[*conn] = func(ctx context.Context) (*conn, error) {
		if calls.Add(1) == 2 {
			cancel()
		}
		return nil, errUnreachable
	}

	b := bootstrap.New(dial, h,
		bootstrap.WithAttempts(2),
		bootstrap.WithInterval(time.Millisecond),
	)

	_, err := b.Connect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, bootstrap.ErrAttemptsExhausted)
	assert.EqualValues(t, 2, calls.Load())
	assert.False(t, h.IsSet())
}

func TestStartDoesNotBlock(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	h := handle.New[*conn]()
	b := bootstrap.New(func(ctx context.Context) (*conn, error) {
		<-release
		return &conn{id: 1}, nil
	}, h)

	future := b.Start(context.Background())
	assert.False(t, future.IsComplete())
	assert.False(t, h.IsSet())

	close(release)
	c, err := future.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, c.id)
	assert.True(t, h.IsSet())
}

func TestStartReportsExhaustion(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	b := bootstrap.New(flakyDialer(100, &calls), handle.New[*conn](),
		bootstrap.WithAttempts(3),
		bootstrap.WithInterval(time.Millisecond),
	)

	_, err := b.Start(context.Background()).AwaitWithTimeout(time.Second)
	assert.ErrorIs(t, err, bootstrap.ErrAttemptsExhausted)
}

func TestConnectLogSequence(t *testing.T) {
	t.Parallel()

	var buf syncBuffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	var calls atomic.Int32
	h := handle.New[*conn]()
	b := bootstrap.New(flakyDialer(2, &calls), h,
		bootstrap.WithInterval(time.Millisecond),
		bootstrap.WithLogger(log),
	)

	_, err := b.Connect(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "connection attempt failed"))
	assert.Equal(t, 2, strings.Count(out, "retrying connection"))
	assert.Equal(t, 1, strings.Count(out, "msg=connected"))
	assert.Contains(t, out, "event=connected")
	assert.Contains(t, out, "duration=")
	assert.Contains(t, out, "remaining=4")
	assert.Contains(t, out, "component=bootstrap")
	assert.True(t, h.IsSet())
}
