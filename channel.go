// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

// Channel is a fixed-capacity single-producer/single-consumer ring buffer,
// the canonical synchronization primitive between two routines. All
// operations are O(1) and non-blocking; a caller that cannot tolerate a
// dropped write or a spurious empty read gates the call with CanWrite or
// CanRead inside ctx.Await.
//
// No locking is used: Channel is shared by exactly two routines, and under
// this package's scheduler at most one routine (or the scheduler itself)
// is ever unblocked at a time, so mid-update state is never observable
// from the other side.
type Channel[T any] struct {
	buf   []T
	head  int
	tail  int
	count int
}

// NewChannel constructs a Channel with the given fixed capacity. Capacity
// must be positive; a non-positive capacity would make every write fail
// and every read see nothing, which is never the caller's intent.
func NewChannel[T any](capacity int) *Channel[T] {
	if capacity <= 0 {
		panic("cotask: channel capacity must be positive")
	}
	return &Channel[T]{buf: make([]T, capacity)}
}

// Cap returns the channel's fixed capacity.
func (c *Channel[T]) Cap() int { return len(c.buf) }

// Len returns the number of elements currently buffered.
func (c *Channel[T]) Len() int { return c.count }

// CanWrite reports whether the next Write would succeed. Intended for use
// inside ctx.Await by a producer that must not lose data.
func (c *Channel[T]) CanWrite() bool { return c.count < len(c.buf) }

// CanRead reports whether the next Read would return a real element.
// Intended for use inside ctx.Await by a consumer.
func (c *Channel[T]) CanRead() bool { return c.count > 0 }

// Write enqueues v. If the channel is full, v is dropped silently and
// Write returns false — this is the documented overflow policy; callers
// that must not lose data gate the call with CanWrite under ctx.Await.
func (c *Channel[T]) Write(v T) bool {
	if c.count == len(c.buf) {
		return false
	}
	c.buf[c.tail] = v
	c.tail = (c.tail + 1) % len(c.buf)
	c.count++
	return true
}

// Read dequeues and returns the oldest buffered element. If the channel is
// empty, it returns the zero value of T and sets no error; callers gate
// with CanRead under ctx.Await when a real value is required.
func (c *Channel[T]) Read() T {
	if c.count == 0 {
		var zero T
		return zero
	}
	v := c.buf[c.head]
	var zero T
	c.buf[c.head] = zero // drop the reference so T=*X doesn't pin garbage
	c.head = (c.head + 1) % len(c.buf)
	c.count--
	return v
}
