// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

// Bracket runs use with a resource that is always released afterward, even
// if use panics — acquire, use, release, in that order, with release
// guaranteed.
//
// Typical use is a routine body that owns a CharStream-like resource only
// for its own lifetime, e.g. a producer that opens a ByteChannel-backed
// connection, writes to it across many Ctx.Yield suspensions, and must
// close it whether it finishes cleanly or panics.
func Bracket[R any](acquire func() (R, error), release func(R), use func(R) error) error {
	r, err := acquire()
	if err != nil {
		return err
	}
	defer release(r)
	return use(r)
}

// OnError runs cleanup only if use returns a non-nil error, then returns
// that error unchanged. Unlike Bracket, a successful use runs no cleanup
// at all — the mirror image of Bracket's always-release guarantee, for
// callers whose resource needs attention only on the failure path.
func OnError(use func() error, cleanup func(error)) error {
	if err := use(); err != nil {
		cleanup(err)
		return err
	}
	return nil
}
