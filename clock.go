// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"sync/atomic"
	"time"
)

// Clock is the monotonic millisecond counter the runtime reads. It is the
// only contract the scheduler has with wall-clock time, which keeps
// DELAY/deadline arithmetic testable with a FakeClock instead of real time.
type Clock interface {
	// Millis returns the current time as an unsigned, wrapping
	// millisecond counter. Implementations are free to choose any
	// epoch; only differences between two readings are meaningful.
	Millis() uint32
}

// elapsed reports whether now has reached or passed deadline, using
// wrap-safe signed-difference arithmetic so a 32-bit millisecond counter
// wrapping at roughly 49.7 days does not make deadlines unreachable.
func elapsed(now, deadline uint32) bool {
	return int32(now-deadline) >= 0
}

// SystemClock reads the host's monotonic clock, scaled to milliseconds
// since the clock was constructed. It never calls time.Now() more than
// once outside of Millis, so two SystemClock values are independently
// epoched — only comparisons within one SystemClock are meaningful.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock anchored at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis implements Clock.
func (c *SystemClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// FakeClock is a Clock whose value is advanced explicitly by tests. It is
// safe to read and advance from a single goroutine at a time, matching the
// single-threaded cooperative model the rest of the package assumes; it
// uses an atomic counter only so a diagnostics poller on a different
// goroutine (e.g. a TUI) can read it without a race.
type FakeClock struct {
	millis atomic.Uint32
}

// NewFakeClock returns a FakeClock starting at the given millisecond value.
// Tests exercising wraparound start one near math.MaxUint32 and advance
// past the rollover.
func NewFakeClock(start uint32) *FakeClock {
	c := &FakeClock{}
	c.millis.Store(start)
	return c
}

// Millis implements Clock.
func (c *FakeClock) Millis() uint32 {
	return c.millis.Load()
}

// Advance moves the clock forward by d milliseconds, wrapping on overflow
// exactly as a real 32-bit hardware counter would.
func (c *FakeClock) Advance(d uint32) {
	c.millis.Add(d)
}

// Set pins the clock to an absolute value, wrapping included.
func (c *FakeClock) Set(v uint32) {
	c.millis.Store(v)
}
