package fancy

import (
	"github.com/rony4d/go-fancyslice/utils/bound"
	"github.com/rony4d/go-fancyslice/utils/endian"
)

// Simple is the release view: the window is the slice, nothing else is kept.
// Every sub-view is re-based so its first byte is offset 0, and there is no
// way back to the original coordinates.
type Simple struct {
	data []byte
}

// NewSimple returns a view over the whole of data.
func NewSimple(data []byte) Simple {
	return Simple{data: data[:len(data):len(data)]}
}

// RelativeSlice derives a view over the bytes covered by r. An open end runs
// to the end of the receiver.
func (s Simple) RelativeSlice(r bound.Range) Simple {
	return Simple{data: s.RelativeBytes(r)}
}

// RelativeBytes returns the bytes covered by r.
// The result shares memory with the buffer and must not be modified.
func (s Simple) RelativeBytes(r bound.Range) []byte {
	lo, hi := r.Resolve(len(s.data))
	return s.data[lo:hi:hi]
}

func (s Simple) U8(offset int) uint8 {
	return s.data[offset]
}

func (s Simple) I8(offset int) int8 {
	return int8(s.data[offset])
}

func (s Simple) U16BE(offset int) uint16 {
	return endian.U16(s.data[offset:])
}

func (s Simple) I16BE(offset int) int16 {
	return endian.I16(s.data[offset:])
}

func (s Simple) U32BE(offset int) uint32 {
	return endian.U32(s.data[offset:])
}

func (s Simple) I32BE(offset int) int32 {
	return endian.I32(s.data[offset:])
}

func (s Simple) F32BE(offset int) float32 {
	return endian.F32(s.data[offset:])
}

// Str reads the zero-terminated UTF-8 string at offset. Error offsets are
// relative to the view.
func (s Simple) Str(offset int) (string, error) {
	return readString(s.data, offset, 0)
}

func (s Simple) Len() int {
	return len(s.data)
}

// Hex renders the bytes covered by r as hex, two bytes per word.
func (s Simple) Hex(r bound.Range) string {
	return hexWords(s.RelativeBytes(r))
}

// ASCII renders the bytes covered by r, printing '.' for anything that is
// not graphic ASCII.
func (s Simple) ASCII(r bound.Range) string {
	return printable(s.RelativeBytes(r))
}
