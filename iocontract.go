// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

// CharStream is the non-blocking byte-stream contract consumed from the
// host, named but not implemented by this package: a serial transport and
// line reader are out of scope (see the package doc), but routine bodies
// that talk to one are written against this interface so tests can satisfy
// it with a ByteChannel instead of real hardware.
type CharStream interface {
	// Available reports how many bytes can be read without blocking.
	Available() int
	// ReadByte returns the next byte and true, or (0, false) if none is
	// available.
	ReadByte() (byte, bool)
	// WriteByte writes b, returning false if it could not be accepted
	// (e.g. a full transmit buffer).
	WriteByte(b byte) bool
}

// ByteChannel adapts a Channel[byte] to the CharStream contract. Go
// forbids attaching methods to a generic type instantiated with a
// concrete argument (Channel[byte]) from outside its own declaration, so
// the adaptation lives on this thin wrapper instead of on Channel itself.
type ByteChannel struct {
	*Channel[byte]
}

// NewByteChannel constructs a ByteChannel with the given fixed capacity.
func NewByteChannel(capacity int) *ByteChannel {
	return &ByteChannel{Channel: NewChannel[byte](capacity)}
}

// Available implements CharStream.
func (c *ByteChannel) Available() int { return c.Len() }

// ReadByte implements CharStream.
func (c *ByteChannel) ReadByte() (byte, bool) {
	if !c.CanRead() {
		return 0, false
	}
	return c.Read(), true
}

// WriteByte implements CharStream.
func (c *ByteChannel) WriteByte(b byte) bool {
	return c.Write(b)
}

var _ CharStream = (*ByteChannel)(nil)
