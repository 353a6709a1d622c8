// Package live provides single-writer, multi-reader observable values.
//
// A Value holds the latest state of something (the current encounter, the
// owned monster list) and pushes every replacement to its subscribers.
// Subscribers only ever see the newest value: a slow reader that misses
// intermediate states receives the latest one, and a writer never blocks on
// a reader.
package live

import (
	"context"
	"sync"
)

// Value is an observable cell
type Value[T any] struct {
	mu      sync.RWMutex
	current T
	nextID  uint64
	subs    map[uint64]chan T
}

// NewValue creates a cell holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current: initial,
		subs:    make(map[uint64]chan T),
	}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set replaces the value and pushes it to every subscriber
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = val
	for _, ch := range v.subs {
		offer(ch, val)
	}
}

// Subscribe returns a channel that first yields the current value and then
// every later replacement. The channel is closed when ctx is done.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = ch
	ch <- v.current
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.subs, id)
		close(ch)
		v.mu.Unlock()
	}()

	return ch
}

// Subscribers reports how many subscriptions are open
func (v *Value[T]) Subscribers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subs)
}

// offer replaces whatever is buffered in ch with val. Callers hold the write
// lock, so no other sender can refill the buffer in between.
func offer[T any](ch chan T, val T) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- val:
	default:
	}
}
