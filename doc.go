// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cotask provides a cooperative multitasking runtime for
// resource-constrained, single-threaded environments: routines that
// express long-running, I/O-waiting logic as sequential code yielding at
// well-defined points, and a scheduler that interleaves many such
// routines on one logical thread of control without preemption or a
// heap that grows during steady-state operation.
//
// # Design Philosophy
//
// cotask provides:
//   - A Routine abstraction with its own resume point, stepped one leg
//     at a time by a Scheduler
//   - Four suspension points — Yield, Await, Delay, End — as the only
//     legal way for a routine to hand control back
//   - A bounded, lock-free Channel as the canonical way two routines
//     exchange data
//   - Round-robin dispatch with wrap-safe millisecond deadlines, so a
//     32-bit clock counter rolling over does not strand a delayed routine
//
// # Resumable Routines Without a Language-Level Coroutine
//
// Go has no stackless resumable function. Each Routine instead runs its
// body on a dedicated goroutine parked on a rendezvous channel between
// suspension points — the same shape as a small per-task stack that is
// switched to and from, just implemented with channel handoff instead of
// stack-switching assembly. At most one of (the Scheduler, one Routine's
// goroutine) is ever unblocked at a time, so the package's single-
// threaded, non-preemptive guarantees hold regardless of GOMAXPROCS.
//
//   - [Routine]: a cooperative task, stepped by a [Scheduler]
//   - [Ctx]: the handle a routine body suspends itself with
//   - [Status]: the five states a routine can be observed in between steps
//
// # Control Primitives
//
//   - [Ctx.Yield]: ready immediately; step again next sweep
//   - [Ctx.Await]: re-poll a predicate until it is true
//   - [Ctx.Delay]: sleep until a deadline, safely across clock rollover
//   - [Ctx.End]: terminate; never returns to its caller
//
// # Scheduler
//
//   - [NewScheduler]: construct an empty scheduler driven by a [Clock]
//   - [Scheduler.Spawn]: construct and register a routine
//   - [Scheduler.Setup], [Scheduler.Loop]: the host's main-loop contract
//   - [Scheduler.RunOne]: one round-robin dispatch step
//   - [Scheduler.Routines], [Scheduler.Snapshot]: introspection for diagnostics
//
// # Clock
//
// [Clock] is the only contract the scheduler has with time — a monotonic,
// wrapping millisecond counter. [SystemClock] wraps the host clock;
// [FakeClock] lets tests drive delay and wraparound deterministically.
//
// # Channel
//
// [Channel] is a fixed-capacity single-producer/single-consumer ring
// buffer. Writes beyond capacity are dropped and report false; reads on an
// empty channel return the zero value. [ByteChannel] additionally
// satisfies [CharStream], the non-blocking byte-stream contract a serial
// transport or line reader would implement — those collaborators are out
// of scope for this package, but routine bodies are written against the
// contract so tests can satisfy it with a Channel instead of hardware.
//
// # Resource Safety
//
//   - [Bracket]: acquire-use-release with guaranteed release
//   - [OnError]: run cleanup only when use fails
//
// # Example
//
//	sched := cotask.NewScheduler(cotask.NewSystemClock())
//	sched.Spawn("blinker", func(ctx *cotask.Ctx) {
//		for {
//			fmt.Println("tick")
//			ctx.Delay(100 * time.Millisecond)
//		}
//	})
//	sched.Setup()
//	for {
//		sched.Loop()
//	}
package cotask
