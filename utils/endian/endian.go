package endian

// endian.go decodes fixed-width big-endian values from the front of a byte slice.
//
// Every function reads exactly the bytes it needs and panics with a runtime
// bounds error when len(b) is shorter than that. Spare capacity is never read.

import (
	"math"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
)

const (
	// Size16 is the byte width of the 16-bit values.
	Size16 = 2
	// Size32 is the byte width of the 32-bit values.
	Size32 = 4
)

// U16 decodes a big-endian uint16.
func U16(b []byte) uint16 {
	return bigendian.BytesToUint16(b)
}

// I16 decodes a big-endian int16 (two's complement).
func I16(b []byte) int16 {
	return int16(U16(b))
}

// U32 decodes a big-endian uint32.
func U32(b []byte) uint32 {
	return bigendian.BytesToUint32(b)
}

// I32 decodes a big-endian int32 (two's complement).
func I32(b []byte) int32 {
	return int32(U32(b))
}

// F32 decodes a big-endian IEEE-754 single precision float.
func F32(b []byte) float32 {
	return math.Float32frombits(U32(b))
}
