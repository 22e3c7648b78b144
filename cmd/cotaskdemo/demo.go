// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/RobertHorst/cotask"
)

// buildDemo spawns a fixed blinker, an awaiting gate and the routine that
// opens it, plus n producer/consumer pairs exchanging bytes over a
// cotask.ByteChannel, on sched. It mirrors the delay, await and channel
// pipe scenarios in the package's own tests as a runnable program instead
// of an assertion.
func buildDemo(sched *cotask.Scheduler, n int) {
	sched.Spawn("blinker", func(ctx *cotask.Ctx) {
		for {
			fmt.Println("tick")
			ctx.Delay(200 * time.Millisecond)
		}
	})

	ready := false
	sched.Spawn("gate", func(ctx *cotask.Ctx) {
		ctx.Await(func() bool { return ready })
		fmt.Println("gate: go")
	})
	sched.Spawn("gate-opener", func(ctx *cotask.Ctx) {
		ctx.Delay(500 * time.Millisecond)
		ready = true
		ctx.End()
	})

	for i := 0; i < n; i++ {
		spawnPipe(sched, i)
	}
}

// spawnPipe wires a producer and a consumer around one ByteChannel. The
// producer is wrapped in cotask.Bracket so its side of the channel is
// guaranteed to be released even on a panic mid-write; the consumer is
// wrapped in cotask.OnError so a framing mismatch is logged on the way out
// instead of silently producing garbage output.
func spawnPipe(sched *cotask.Scheduler, i int) {
	ch := cotask.NewByteChannel(4)
	message := []byte(fmt.Sprintf("pipe-%d\n", i))

	sched.Spawn(fmt.Sprintf("producer-%d", i), func(ctx *cotask.Ctx) {
		_ = cotask.Bracket(
			func() (*cotask.ByteChannel, error) { return ch, nil },
			func(*cotask.ByteChannel) {},
			func(c *cotask.ByteChannel) error {
				for _, b := range message {
					ctx.Await(c.CanWrite)
					c.Write(b)
					ctx.Yield()
				}
				return nil
			},
		)
	})

	sched.Spawn(fmt.Sprintf("consumer-%d", i), func(ctx *cotask.Ctx) {
		var out []byte
		err := cotask.OnError(
			func() error {
				for len(out) < len(message) {
					ctx.Await(ch.CanRead)
					out = append(out, ch.Read())
				}
				if string(out) != string(message) {
					return fmt.Errorf("pipe-%d: got %q, want %q", i, out, message)
				}
				return nil
			},
			func(err error) {
				cotask.Logger().Sugar().Errorw("pipe consumer validation failed", "pipe", i, "error", err)
			},
		)
		if err != nil {
			return
		}
		fmt.Printf("consumer-%d: %q\n", i, out)
	})
}
