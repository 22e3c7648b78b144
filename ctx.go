// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"runtime"
	"time"
)

// Ctx is the handle a routine body uses to suspend itself. Its four
// methods — Yield, Await, Delay, End — are the only legal way for a
// routine to hand control back to the scheduler, spelled as ordinary
// method calls rather than macros, since Go has no macro expansion.
//
// A Ctx is only ever driven by the goroutine running its own routine's
// body; calling its methods from any other goroutine is a misuse of the
// cooperative contract and is not guarded against, matching the package's
// "no locking, single active party at a time" design.
type Ctx struct {
	r *Routine
}

// Yield suspends until the scheduler's next sweep, then returns. It is the
// simplest suspension point: "ready immediately, but let others run too."
func (c *Ctx) Yield() {
	c.r.suspend(StatusYielding)
}

// Await suspends, re-polling cond on every resumption, until cond returns
// true. While cond is false the routine is reported as StatusAwaiting;
// Await returns to the caller only once cond is true, having advanced past
// the suspension exactly once.
func (c *Ctx) Await(cond func() bool) {
	for !cond() {
		c.r.suspend(StatusAwaiting)
	}
}

// Delay suspends until at least d has elapsed on the scheduler's Clock.
// The first suspension always happens, even if d has already elapsed by
// the time the deadline is next checked — a suspension primitive always
// hands control back to the scheduler at least once on the call that
// issues it. Spurious resumption before the deadline is safe: Delay
// simply re-suspends with the same deadline, and the deadline comparison
// is wrap-safe across the clock's rollover.
func (c *Ctx) Delay(d time.Duration) {
	deadline := c.r.sched.clock.Millis() + uint32(d.Milliseconds())
	c.r.wakeMillis = deadline
	for {
		c.r.suspend(StatusDelaying)
		if elapsed(c.r.sched.clock.Millis(), deadline) {
			return
		}
	}
}

// End terminates the routine. A routine body should return immediately
// after calling End, though it does not strictly need to: End never
// returns to its caller. Falling off the end of the body function without
// calling End at all has the same effect — the wrapper goroutine treats a
// normal return as an implicit End.
func (c *Ctx) End() {
	runtime.Goexit()
}
