// Package observable provides a mutex-guarded state cell that notifies
// subscribers with a snapshot after every update.
//
// Snapshots are delivered in the order the updates were applied. Concurrent
// updaters queue their snapshots and a single goroutine drains the queue, so
// the last snapshot a subscriber receives is always the current state.
package observable

import "sync"

// Value holds a state snapshot of type T.
type Value[T any] struct {
	mu     sync.Mutex
	state  T
	nextID int
	subs   map[int]func(T)

	queue    []T
	draining bool
}

// New returns a Value seeded with initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{state: initial, subs: make(map[int]func(T))}
}

// Get returns the current snapshot.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Update applies fn to the current state atomically and notifies subscribers
// with the result once the lock is released. It returns the new snapshot.
func (v *Value[T]) Update(fn func(T) T) T {
	next, _ := v.TryUpdate(func(cur T) (T, bool) { return fn(cur), true })
	return next
}

// TryUpdate is Update for changes that may not apply. When fn reports false the
// state is kept and no subscriber is notified.
//
// When another goroutine is already delivering, the snapshot is queued behind
// the ones it is delivering and TryUpdate returns without waiting. An update
// issued from inside a subscriber is delivered after that subscriber returns.
func (v *Value[T]) TryUpdate(fn func(T) (T, bool)) (T, bool) {
	v.mu.Lock()
	next, changed := fn(v.state)
	if !changed {
		cur := v.state
		v.mu.Unlock()
		return cur, false
	}
	v.state = next
	v.queue = append(v.queue, next)
	if v.draining {
		v.mu.Unlock()
		return next, true
	}
	v.draining = true
	v.mu.Unlock()

	v.drain()
	return next, true
}

// drain delivers queued snapshots in FIFO order until the queue is empty.
func (v *Value[T]) drain() {
	completed := false
	defer func() {
		if !completed {
			v.mu.Lock()
			v.draining = false
			v.mu.Unlock()
		}
	}()

	for {
		v.mu.Lock()
		if len(v.queue) == 0 {
			v.draining = false
			v.queue = nil
			v.mu.Unlock()
			completed = true
			return
		}
		snapshot := v.queue[0]
		var zero T
		v.queue[0] = zero
		v.queue = v.queue[1:]
		listeners := make([]func(T), 0, len(v.subs))
		for _, l := range v.subs {
			listeners = append(listeners, l)
		}
		v.mu.Unlock()

		for _, l := range listeners {
			l(snapshot)
		}
	}
}

// Set replaces the state.
func (v *Value[T]) Set(state T) {
	v.Update(func(T) T { return state })
}

// Subscribe registers fn and returns a function that removes it.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}
