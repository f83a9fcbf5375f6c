package handle_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tally/pkg/handle"
)

func TestHandleStartsUnset(t *testing.T) {
	t.Parallel()

	h := handle.New[*int]()

	v, ok := h.Get()
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, h.IsSet())

	select {
	case <-h.Ready():
		t.Fatal("ready must not be closed before Set")
	default:
	}
}

func TestHandleSetAndReplace(t *testing.T) {
	t.Parallel()

	h := handle.New[string]()

	prev, replaced := h.Set("first")
	assert.False(t, replaced)
	assert.Empty(t, prev)

	v, ok := h.Get()
	require.True(t, ok)
	assert.Equal(t, "first", v)

	prev, replaced = h.Set("second")
	assert.True(t, replaced)
	assert.Equal(t, "first", prev)

	v, ok = h.Get()
	require.True(t, ok)
	assert.Equal(t, "second", v)

	select {
	case <-h.Ready():
	case <-time.After(time.Second):
		t.Fatal("ready must be closed after Set")
	}
}

func TestHandleConcurrentReaders(t *testing.T) {
	t.Parallel()

	h := handle.New[int]()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-h.Ready()
			v, ok := h.Get()
			assert.True(t, ok)
			assert.Equal(t, 42, v)
		}()
	}

	h.Set(42)
	wg.Wait()
}
