// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parseConfig(nil) returned %v", err)
	}
	if cfg.tick != 20*time.Millisecond {
		t.Fatalf("tick = %v, want 20ms", cfg.tick)
	}
	if cfg.routines != 3 {
		t.Fatalf("routines = %d, want 3", cfg.routines)
	}
	if cfg.interactive {
		t.Fatal("interactive = true, want false by default")
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{"-tick", "50ms", "-routines", "7", "-i"})
	if err != nil {
		t.Fatalf("parseConfig returned %v", err)
	}
	if cfg.tick != 50*time.Millisecond {
		t.Fatalf("tick = %v, want 50ms", cfg.tick)
	}
	if cfg.routines != 7 {
		t.Fatalf("routines = %d, want 7", cfg.routines)
	}
	if !cfg.interactive {
		t.Fatal("interactive = false, want true")
	}
}

func TestParseConfigRejectsNonPositiveTick(t *testing.T) {
	_, err := parseConfig([]string{"-tick", "0s"})
	if err == nil {
		t.Fatal("expected an error for -tick 0s")
	}
	var cerr *configError
	if !asConfigError(err, &cerr) {
		t.Fatalf("error %v is not a *configError", err)
	}
	if cerr.Kind != kindInvalidInput {
		t.Fatalf("Kind = %v, want %v", cerr.Kind, kindInvalidInput)
	}
	if cerr.Field != "-tick" {
		t.Fatalf("Field = %q, want %q", cerr.Field, "-tick")
	}
	if !strings.Contains(cerr.Error(), "invalid_input") {
		t.Fatalf("Error() = %q, want it to mention the kind", cerr.Error())
	}
}

func TestParseConfigRejectsNegativeRoutines(t *testing.T) {
	_, err := parseConfig([]string{"-routines", "-1"})
	if err == nil {
		t.Fatal("expected an error for -routines -1")
	}
	var cerr *configError
	if !asConfigError(err, &cerr) {
		t.Fatalf("error %v is not a *configError", err)
	}
	if cerr.Field != "-routines" {
		t.Fatalf("Field = %q, want %q", cerr.Field, "-routines")
	}
}

// asConfigError is a small local stand-in for errors.As, since the error
// values under test are always exactly *configError, never wrapped.
func asConfigError(err error, target **configError) bool {
	cerr, ok := err.(*configError)
	if !ok {
		return false
	}
	*target = cerr
	return true
}
