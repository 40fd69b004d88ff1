package loop

import "sync"

// Shared holds a single value handed between the scheduler goroutine and
// readers such as the display. Values are replaced whole, never mutated in
// place, so readers always see a consistent copy.
type Shared[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewShared creates a container holding the zero value of T.
func NewShared[T any]() *Shared[T] {
	return &Shared[T]{}
}

// Get returns the current value, or the zero value if none was stored.
func (s *Shared[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set replaces the current value.
func (s *Shared[T]) Set(v T) {
	s.mu.Lock()
	s.v = v
	s.mu.Unlock()
}
