// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

// Routine is a cooperative task with its own resume point, stepped by a
// Scheduler. Go offers no language-level resumable function, so a Routine
// runs its body on a dedicated goroutine parked on a rendezvous channel
// between suspension points — the portable analogue of the small
// per-task stack TinyGo's own embedded scheduler switches to and from
// (runtime/internal/task's Task.Pause/Task.Resume), implemented here with
// channels instead of stack-switching assembly.
//
// At most one of (the scheduler, this routine's goroutine) is ever
// unblocked at a time, so the single-threaded, non-preemptive guarantees
// the rest of this package relies on hold regardless of GOMAXPROCS.
type Routine struct {
	// Name is a stable identifier used for diagnostics; it plays no role
	// in scheduling.
	Name string

	status     Status
	wakeMillis uint32
	steps      uint64

	next  *Routine // intrusive link; forms a circular list with all siblings
	sched *Scheduler

	resumeCh chan struct{} // scheduler -> routine: "run one leg"
	statusCh chan Status   // routine -> scheduler: "here is my new status"
}

// RoutineInfo is a read-only snapshot of a Routine for introspection —
// a plain value a diagnostics consumer can hold onto after the routine
// it was taken from has moved on.
type RoutineInfo struct {
	Name       string
	Status     Status
	Steps      uint64
	WakeMillis uint32
}

// Info returns a snapshot of the routine's current state. Safe to call
// between Scheduler.RunOne calls; calling it concurrently with RunOne is a
// data race on Name/status/wakeMillis/steps, since nothing in this
// package synchronizes diagnostics reads against the cooperative loop —
// callers driving a live diagnostics view (e.g. a TUI) must poll from the
// same goroutine that drives the scheduler. Scheduler.Snapshot reads
// through Info and carries the same constraint.
func (r *Routine) Info() RoutineInfo {
	return RoutineInfo{
		Name:       r.Name,
		Status:     r.status,
		Steps:      r.steps,
		WakeMillis: r.wakeMillis,
	}
}

// run is the body of the goroutine backing a Routine. It blocks for the
// first handoff (so no user code executes before the scheduler's first
// step), then runs body to completion, panic, or Ctx.End — whichever
// comes first — and reports StatusEnding exactly once on the way out.
func (r *Routine) run(body func(*Ctx)) {
	<-r.resumeCh
	ctx := &Ctx{r: r}
	defer func() {
		if rec := recover(); rec != nil {
			Logger().Sugar().Errorw("cotask: routine panicked; ending",
				"routine", r.Name, "panic", rec)
		}
		r.statusCh <- StatusEnding
	}()
	body(ctx)
}

// suspend reports st to the scheduler and blocks until the scheduler hands
// control back. It is the single primitive all of Yield/Await/Delay build
// on; End does not use it, since End's goroutine never expects to be
// resumed again.
func (r *Routine) suspend(st Status) {
	r.statusCh <- st
	<-r.resumeCh
}

// step performs exactly one rendezvous leg: hand off to the routine's
// goroutine and block until it suspends again or ends. The caller (always
// Scheduler.RunOne) is responsible for only calling step on a routine it
// has already determined is eligible to run — step itself only
// special-cases StatusEnding, whose transition to StatusEnded is the
// runtime's own doing, not the body's: once a routine has ended, its body
// is never re-entered.
func (r *Routine) step(now uint32) Status {
	if r.status == StatusEnding {
		r.status = StatusEnded
		return StatusEnded
	}
	r.steps++
	r.resumeCh <- struct{}{}
	st := <-r.statusCh
	r.status = st
	return st
}

// eligible reports whether the scheduler may step this routine right now:
// ready statuses are steppable immediately, Delaying additionally needs
// its deadline to have passed, and Ended is never steppable again.
func (r *Routine) eligible(now uint32) bool {
	if r.status == StatusDelaying {
		return elapsed(now, r.wakeMillis)
	}
	return r.status.runnable()
}
