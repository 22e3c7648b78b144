// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command cotaskdemo runs a handful of cotask routines either as a plain
// console loop or inside a live diagnostics TUI. It exists to exercise
// the cotask package end to end the way a host program would, not as a
// general-purpose tool.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/RobertHorst/cotask"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	cotask.SetLogger(logger)

	sched := cotask.NewScheduler(cotask.NewSystemClock())
	buildDemo(sched, cfg.routines)
	sched.Setup()

	if cfg.interactive {
		if _, err := tea.NewProgram(newDemoModel(sched, cfg.tick)).Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	runPlain(sched, cfg.tick)
}

// runPlain drives sched on a fixed tick forever, the non-interactive
// equivalent of the TUI's tea.Tick-driven update loop.
func runPlain(sched *cotask.Scheduler, tick time.Duration) {
	for {
		sched.Loop()
		time.Sleep(tick)
	}
}
