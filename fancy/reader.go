package fancy

// This package wraps a byte buffer with offset-addressed, big-endian reads.
//
// Two view types implement the same read contract:
//
//   - Debug keeps the whole original buffer plus a [start, end) window, so it
//     can resolve any offset back to the buffer's coordinate 0 and offers
//     diagnostics (Offset, Find*, SearchPointers, AbsoluteSlice).
//   - Simple keeps only the window itself; every sub-view is re-based to 0.
//
// Slice is an alias for one of them, chosen at build time with the
// `fancydebug` tag, so parsers written against Slice compile in both modes.
//
// Error model: reading outside the window is a programming error and panics
// with the runtime's bounds error. Str is the only call with a returned
// error, since string fields are the one place malformed input is expected.
//
// Views never copy or mutate the buffer. The caller must not modify the
// buffer while views over it are in use.

import (
	"github.com/rony4d/go-fancyslice/utils/bound"
)

// Reader is the read contract shared by Debug and Simple.
// Sub-view derivation is not part of it since each type returns itself;
// use Slice for mode-agnostic sub-views.
type Reader interface {
	Len() int

	U8(offset int) uint8
	I8(offset int) int8
	U16BE(offset int) uint16
	I16BE(offset int) int16
	U32BE(offset int) uint32
	I32BE(offset int) int32
	F32BE(offset int) float32
	Str(offset int) (string, error)

	RelativeBytes(r bound.Range) []byte
	Hex(r bound.Range) string
	ASCII(r bound.Range) string
}

var (
	_ Reader = Debug{}
	_ Reader = Simple{}
)
