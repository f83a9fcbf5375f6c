package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tally/pkg/async"
)

func TestGoReturnsValue(t *testing.T) {
	t.Parallel()

	f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return 42, nil
	})

	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, f.IsComplete())
}

func TestGoReturnsError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	f := async.Go(context.Background(), func(ctx context.Context) (string, error) {
		return "", want
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, want)
}

func TestGoPreCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := make(chan struct{}, 1)
	f := async.Go(ctx, func(ctx context.Context) (int, error) {
		called <- struct{}{}
		return 1, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, called)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 7, nil
	})

	_, err := f.AwaitWithTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.False(t, f.IsComplete())

	close(release)
	v, err := f.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestDoneChannel(t *testing.T) {
	t.Parallel()

	f := async.Go(context.Background(), func(ctx context.Context) (struct{}, error) {
		return struct{}{}, nil
	})

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future did not complete")
	}
}
