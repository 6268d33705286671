// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

// ByteBuf is a growable buffer of raw bytes, for serialized payloads a
// task or stream element might carry.
//
// Capacity is always a power of two and only ever grows. ByteBuf is not
// synchronized.
type ByteBuf struct {
	buf  []byte
	size int
}

// NewByteBuf creates an empty buffer.
func NewByteBuf() *ByteBuf {
	return &ByteBuf{}
}

// NewByteBufBytes creates a buffer holding a copy of p.
func NewByteBufBytes(p []byte) *ByteBuf {
	b := &ByteBuf{}
	b.Append(p)
	return b
}

// Data returns the buffer contents. The slice aliases the buffer's
// storage and is invalidated by the next growth.
func (b *ByteBuf) Data() []byte {
	return b.buf[:b.size]
}

// Size returns the buffer size in bytes.
func (b *ByteBuf) Size() int {
	return b.size
}

// Cap returns the allocated capacity in bytes.
func (b *ByteBuf) Cap() int {
	return len(b.buf)
}

// Reserve grows the allocation to hold at least n bytes, keeping the
// contents. Shrinking requests are ignored.
func (b *ByteBuf) Reserve(n int) {
	if n <= len(b.buf) {
		return
	}
	nb := make([]byte, roundToPow2(n))
	copy(nb, b.buf[:b.size])
	b.buf = nb
}

// Resize sets the buffer size to n bytes, reserving capacity as needed.
// The allocation never shrinks.
func (b *ByteBuf) Resize(n int) {
	b.Reserve(n)
	b.size = n
}

// Append copies p onto the end of the buffer.
func (b *ByteBuf) Append(p []byte) {
	b.Reserve(b.size + len(p))
	copy(b.buf[b.size:], p)
	b.size += len(p)
}

// Reset empties the buffer, keeping the allocation.
func (b *ByteBuf) Reset() {
	b.size = 0
}
