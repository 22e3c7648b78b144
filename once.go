// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import "sync/atomic"

// onceGate enforces that an operation runs at most once, panicking on a
// second attempt. It carries no value to hand back to the caller — just
// a single admission to grant — so it is a bare atomic.Uintptr bumped
// exactly once rather than anything richer.
type onceGate struct {
	used atomic.Uintptr
}

// enter panics if this is not the first call, naming op in the panic
// message for diagnostics.
func (g *onceGate) enter(op string) {
	if g.used.Add(1) != 1 {
		panic("cotask: " + op + " called more than once")
	}
}
