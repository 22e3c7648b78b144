// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// kind names how config parsing failed, a scaled-down
// version of the structured error taxonomy in
// _examples/wippyai-wasm-runtime/errors: this host only has one phase
// (configuration) worth naming, so the full Phase/Kind cross product from
// that package is not reproduced here.
type kind string

const (
	kindInvalidInput kind = "invalid_input"
)

// configError is a structured configuration error, reported by the CLI
// instead of a bare fmt.Errorf so a future caller can match on Kind.
type configError struct {
	Kind  kind
	Field string
	Value string
	Cause error
}

func (e *configError) Error() string {
	var b strings.Builder
	b.WriteString("[config] ")
	b.WriteString(string(e.Kind))
	if e.Field != "" {
		fmt.Fprintf(&b, " at %s", e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (got %q)", e.Value)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *configError) Unwrap() error { return e.Cause }

// config is the demo host's configuration, populated from flags.
// Grounded on _examples/wippyai-wasm-runtime/cmd/run/main.go: plain
// stdlib flag parsing, no CLI framework.
type config struct {
	tick        time.Duration
	routines    int
	interactive bool
}

func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("cotaskdemo", flag.ContinueOnError)
	tick := fs.Duration("tick", 20*time.Millisecond, "interval between scheduler dispatch steps")
	routines := fs.Int("routines", 3, "number of demo producer/consumer pairs to spawn in addition to the fixed blinker and awaiter")
	interactive := fs.Bool("i", false, "interactive mode with a live diagnostics TUI")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if *tick <= 0 {
		return config{}, &configError{Kind: kindInvalidInput, Field: "-tick", Value: tick.String()}
	}
	if *routines < 0 {
		return config{}, &configError{Kind: kindInvalidInput, Field: "-routines", Value: fmt.Sprint(*routines)}
	}
	return config{tick: *tick, routines: *routines, interactive: *interactive}, nil
}
