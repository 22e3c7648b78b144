// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package's logger. It is a no-op logger until a host
// calls SetLogger, since a library must not write to the process's logs
// unless the embedder opts in. Grounded on the singleton logger accessor
// in the wippyai-wasm-runtime engine package, adapted to an atomic pointer
// so SetLogger is safe to call concurrently with routines logging panics.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger replaces the package's logger. Intended to be called once
// during host setup, before any Scheduler starts stepping routines; the
// only place this package itself logs from is a routine's panic-recovery
// path (see Routine.run).
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
