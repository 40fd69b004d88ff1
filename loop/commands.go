package loop

import "sync"

// Commands buffers work that must run on the scheduler goroutine. Other
// goroutines queue functions with Defer; the scheduler drains them with
// Flush.
type Commands struct {
	mu     sync.Mutex
	defers []func()
	spare  []func()
}

// Defer queues fn. It is safe to call from any goroutine, including from a
// function being flushed; such a function runs on the next Flush.
func (c *Commands) Defer(fn func()) {
	c.mu.Lock()
	c.defers = append(c.defers, fn)
	c.mu.Unlock()
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.defers)
}

// Flush runs the queued functions in order and resets the buffer.
func (c *Commands) Flush() {
	c.mu.Lock()
	pending := c.defers
	c.defers = c.spare[:0]
	c.mu.Unlock()

	for i, fn := range pending {
		fn()
		pending[i] = nil
	}

	c.mu.Lock()
	c.spare = pending[:0]
	c.mu.Unlock()
}
