// Package handle provides a typed optional value that one goroutine publishes
// and many goroutines read without locking.
//
// A Handle starts unset. Readers call Get and branch on the second return
// value, so "not available yet" is an explicit condition rather than a nil check:
//
//	h := handle.New[*mongo.Database]()
//	go func() { h.Set(connect()) }()
//
//	if db, ok := h.Get(); ok {
//		// use db
//	}
package handle

import (
	"sync"
	"sync/atomic"
)

// Handle holds a value of type T that is absent until the first Set.
// Once set it never becomes unset again. The zero value is not usable; call New.
type Handle[T any] struct {
	v     atomic.Pointer[T]
	ready chan struct{}
	once  sync.Once
}

// New returns an unset handle.
func New[T any]() *Handle[T] {
	return &Handle[T]{ready: make(chan struct{})}
}

// Get returns the current value and whether one has been published.
func (h *Handle[T]) Get() (T, bool) {
	if p := h.v.Load(); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// IsSet reports whether a value has been published.
func (h *Handle[T]) IsSet() bool {
	return h.v.Load() != nil
}

// Set publishes v, replacing any previous value, and returns the value it
// replaced so the caller can release it.
func (h *Handle[T]) Set(v T) (prev T, replaced bool) {
	if old := h.v.Swap(&v); old != nil {
		prev, replaced = *old, true
	}
	h.once.Do(func() { close(h.ready) })
	return prev, replaced
}

// Ready returns a channel closed after the first Set.
func (h *Handle[T]) Ready() <-chan struct{} {
	return h.ready
}
