// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

// Status is the state of a Routine as observed by the Scheduler between
// two steps. The zero value is StatusYielding, so a freshly constructed
// Routine is ready to be stepped for the first time.
type Status int

const (
	// StatusYielding means the routine is ready immediately; step it
	// again on the scheduler's next sweep.
	StatusYielding Status = iota
	// StatusDelaying means the routine is not ready until the clock
	// reaches its wake deadline.
	StatusDelaying
	// StatusAwaiting means the routine is ready to be stepped again so
	// it can re-poll its predicate.
	StatusAwaiting
	// StatusEnding means the routine must be stepped exactly once more;
	// that step moves it to StatusEnded without re-entering the body.
	StatusEnding
	// StatusEnded is terminal. A routine in this state is permanently
	// skipped by the scheduler.
	StatusEnded
)

// String implements fmt.Stringer for diagnostics output.
func (s Status) String() string {
	switch s {
	case StatusYielding:
		return "Yielding"
	case StatusDelaying:
		return "Delaying"
	case StatusAwaiting:
		return "Awaiting"
	case StatusEnding:
		return "Ending"
	case StatusEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// runnable reports whether the scheduler may step a routine in this
// status without first checking a deadline. Delaying routines additionally
// need a clock comparison (see Routine.eligible), so they are not runnable
// on their own.
func (s Status) runnable() bool {
	switch s {
	case StatusYielding, StatusAwaiting, StatusEnding:
		return true
	default:
		return false
	}
}
