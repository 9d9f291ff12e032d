// Package observe provides a minimal observable value holder:
// a current value plus a subscriber list notified on change.
// Presentation controllers expose their state through it.
package observe

import "sync"

// Value holds a current value of type T and notifies subscribers when
// it changes. Safe for concurrent use; subscribers run on the calling
// goroutine of Set, outside the internal lock.
type Value[T any] struct {
	mu          sync.Mutex
	current     T
	equals      func(a, b T) bool
	subscribers map[int]func(T)
	nextID      int
}

// NewValue creates an observable holding the given initial value.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current:     initial,
		subscribers: map[int]func(T){},
	}
}

// NewValueEq creates an observable with an equality function used to
// suppress notifications when a Set does not change the value.
func NewValueEq[T any](initial T, equals func(a, b T) bool) *Value[T] {
	v := NewValue(initial)
	v.equals = equals
	return v
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set replaces the current value and notifies subscribers. When an
// equality function is configured and reports no change, subscribers
// are not notified.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	if v.equals != nil && v.equals(v.current, next) {
		v.mu.Unlock()
		return
	}
	v.current = next
	listeners := make([]func(T), 0, len(v.subscribers))
	for _, fn := range v.subscribers {
		listeners = append(listeners, fn)
	}
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// Update atomically derives the next value from the current one.
func (v *Value[T]) Update(fn func(T) T) {
	v.mu.Lock()
	next := fn(v.current)
	if v.equals != nil && v.equals(v.current, next) {
		v.mu.Unlock()
		return
	}
	v.current = next
	listeners := make([]func(T), 0, len(v.subscribers))
	for _, l := range v.subscribers {
		listeners = append(listeners, l)
	}
	v.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
}

// Subscribe registers a listener invoked with every new value. The
// returned cancel function removes the subscription.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.subscribers, id)
		v.mu.Unlock()
	}
}

// SubscriberCount returns the number of active subscriptions.
func (v *Value[T]) SubscriberCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subscribers)
}
