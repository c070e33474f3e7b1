package fast

// buffer.go provides a lightweight writer that assembles big-endian binary images.
//
// Purpose:
// - Parsers built on fancy views need realistic input: headers, tables of
//   offsets, null-terminated names. Writer lays those out with the same byte
//   order the views decode.
// - Mark/PatchU32 allow writing a self-relative pointer before its target is
//   known, which is how most asset formats link their tables.

import (
	"math"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
)

// Writer appends big-endian values to a byte slice.
type Writer struct {
	// buf is the accumulating byte slice.
	buf []byte
}

// NewWriter creates a Writer that appends to the provided initial slice.
// Often called with `make([]byte, 0, capacity)` to pre-allocate memory.
func NewWriter(bb []byte) *Writer {
	return &Writer{
		buf: bb,
	}
}

// WriteByte appends a single byte to the buffer.
func (b *Writer) WriteByte(v byte) {
	b.buf = append(b.buf, v)
}

// Write appends a slice of bytes (bulk write) to the buffer.
func (b *Writer) Write(v []byte) {
	b.buf = append(b.buf, v...)
}

// U16 appends v in big-endian order.
func (b *Writer) U16(v uint16) {
	b.buf = append(b.buf, bigendian.Uint16ToBytes(v)...)
}

// I16 appends the two's complement of v in big-endian order.
func (b *Writer) I16(v int16) {
	b.U16(uint16(v))
}

// U32 appends v in big-endian order.
func (b *Writer) U32(v uint32) {
	b.buf = append(b.buf, bigendian.Uint32ToBytes(v)...)
}

// I32 appends the two's complement of v in big-endian order.
func (b *Writer) I32(v int32) {
	b.U32(uint32(v))
}

// F32 appends the IEEE-754 bits of v in big-endian order.
func (b *Writer) F32(v float32) {
	b.U32(math.Float32bits(v))
}

// Str appends s followed by a zero terminator.
func (b *Writer) Str(s string) {
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, 0)
}

// Pad appends n zero bytes.
func (b *Writer) Pad(n int) {
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, 0)
	}
}

// Mark returns the offset the next write will land at.
func (b *Writer) Mark() int {
	return len(b.buf)
}

// PatchU32 overwrites the 4 bytes at offset with v.
// Panics if the bytes have not been written yet.
func (b *Writer) PatchU32(offset int, v uint32) {
	_ = b.buf[offset+3]
	copy(b.buf[offset:offset+4], bigendian.Uint32ToBytes(v))
}

// Bytes returns the accumulated content of the Writer.
func (b *Writer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Writer) Len() int {
	return len(b.buf)
}
