// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask_test

import (
	"testing"
	"time"

	"github.com/RobertHorst/cotask"
)

func TestRoutineInfoReportsWakeMillisWhileDelaying(t *testing.T) {
	clock := cotask.NewFakeClock(1000)
	sched := cotask.NewScheduler(clock)
	r := sched.Spawn("sleeper", func(ctx *cotask.Ctx) {
		ctx.Delay(250 * time.Millisecond)
		ctx.End()
	})
	sched.Setup()
	sched.Loop() // enters the body and suspends on Delay

	info := r.Info()
	if info.Status != cotask.StatusDelaying {
		t.Fatalf("Status = %v, want Delaying", info.Status)
	}
	if info.WakeMillis != 1250 {
		t.Fatalf("WakeMillis = %d, want 1250", info.WakeMillis)
	}
	if info.Name != "sleeper" {
		t.Fatalf("Name = %q, want %q", info.Name, "sleeper")
	}
	if info.Steps != 1 {
		t.Fatalf("Steps = %d, want 1", info.Steps)
	}
}

func TestSpawnedRoutineStartsYielding(t *testing.T) {
	sched := cotask.NewScheduler(cotask.NewFakeClock(0))
	r := sched.Spawn("fresh", func(ctx *cotask.Ctx) { ctx.Yield() })
	if got := r.Info().Status; got != cotask.StatusYielding {
		t.Fatalf("fresh routine status = %v, want Yielding", got)
	}
}
