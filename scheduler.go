// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import "iter"

// Scheduler holds the circular list of all routines registered against it
// and a cursor used for round-robin dispatch. It is an explicit value
// rather than a package-level singleton, so independent test cases (or a
// host embedding more than one dispatch loop) can run their own Scheduler
// without global state bleeding between them.
type Scheduler struct {
	clock Clock

	head   *Routine // first-registered routine; also where Routines() starts walking
	tail   *Routine
	cursor *Routine
	n      int

	infoBuf   []RoutineInfo
	setupDone onceGate
}

// NewScheduler constructs an empty Scheduler driven by clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Spawn constructs a Routine running body and registers it with the
// scheduler as a side effect of construction: every constructed routine
// appears exactly once in the circular list. The routine population is
// fixed from then on — this package has no operation to unregister or
// destroy a routine once it has been spawned.
func (s *Scheduler) Spawn(name string, body func(*Ctx)) *Routine {
	r := &Routine{
		Name:     name,
		status:   StatusYielding, // fresh routines start ready so the first step enters the body
		sched:    s,
		resumeCh: make(chan struct{}),
		statusCh: make(chan Status),
	}
	s.register(r)
	go r.run(body)
	return r
}

// register appends r to the tail of the circular list, preserving
// insertion order for round-robin fairness and for the stable diagnostics
// ordering documented on Routines.
func (s *Scheduler) register(r *Routine) {
	if s.head == nil {
		r.next = r
		s.head = r
		s.tail = r
		s.cursor = r
	} else {
		r.next = s.head
		s.tail.next = r
		s.tail = r
	}
	s.n++
}

// Setup performs one-time initialization before the main dispatch loop
// begins. It is a no-op today — present for symmetry with Loop — but is
// guarded against being called twice, since a future Setup that does
// carry real initialization (e.g. priming routine-local state) would be
// unsafe to run more than once.
func (s *Scheduler) Setup() {
	s.setupDone.enter("Scheduler.Setup")
}

// Loop performs one dispatch step. It is intended to be called repeatedly
// from the host's main loop; each call is exactly RunOne.
func (s *Scheduler) Loop() {
	s.RunOne()
}

// RunOne scans forward from the cursor, at most N nodes (N = number of
// routines), looking for one that is eligible to run right now. If found,
// it steps that routine and advances the cursor just past it. If none is
// found (every routine has ended or is delaying short of its deadline),
// this is an idle tick: advance the cursor by one and return. With no
// routines registered, RunOne returns immediately.
func (s *Scheduler) RunOne() {
	if s.n == 0 {
		return
	}
	now := s.clock.Millis()
	node := s.cursor
	for i := 0; i < s.n; i++ {
		if node.eligible(now) {
			node.step(now)
			s.cursor = node.next
			return
		}
		node = node.next
	}
	s.cursor = s.cursor.next
}

// Len returns the number of routines registered with the scheduler.
func (s *Scheduler) Len() int { return s.n }

// Routines iterates every registered routine in construction order,
// starting at the list head rather than the scheduler's cursor, so a
// diagnostics consumer sees a stable ordering regardless of how far the
// scheduler has rotated — the same fixed ordering the original runtime's
// "list"-style introspection command relied on.
func (s *Scheduler) Routines() iter.Seq[*Routine] {
	return func(yield func(*Routine) bool) {
		if s.head == nil {
			return
		}
		node := s.head
		for i := 0; i < s.n; i++ {
			if !yield(node) {
				return
			}
			node = node.next
		}
	}
}

// Snapshot returns a RoutineInfo for every registered routine, in the
// same stable order as Routines. The backing slice is owned by the
// Scheduler and reused across calls to keep repeated diagnostics polling
// (e.g. a TUI redrawing every tick) from allocating on every call;
// callers must treat the returned slice as borrowed until the next
// Snapshot call on the same Scheduler.
func (s *Scheduler) Snapshot() []RoutineInfo {
	s.infoBuf = s.infoBuf[:0]
	for r := range s.Routines() {
		s.infoBuf = append(s.infoBuf, r.Info())
	}
	return s.infoBuf
}
