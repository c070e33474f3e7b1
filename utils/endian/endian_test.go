package endian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	require := require.New(t)

	require.Equal(uint16(0x0401), U16([]byte{0x04, 0x01}))
	require.Equal(int16(-2), I16([]byte{0xff, 0xfe}))
	require.Equal(uint32(0xdeadbeef), U32([]byte{0xde, 0xad, 0xbe, 0xef}))
	require.Equal(int32(math.MinInt32), I32([]byte{0x80, 0, 0, 0}))
	require.Equal(float32(1.5), F32([]byte{0x3f, 0xc0, 0x00, 0x00}))
	require.True(math.IsInf(float64(F32([]byte{0xff, 0x80, 0, 0})), -1))
}

// TestDecode_IgnoresTrailingBytes verifies only the leading bytes are consumed.
func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	require.Equal(t, uint16(0x0102), U16(b))
	require.Equal(t, uint32(0x01020304), U32(b))
}

func TestDecode_ShortInputPanics(t *testing.T) {
	short := []byte{0x01, 0x02, 0x03}

	require.Panics(t, func() { U16(short[:1]) })
	require.Panics(t, func() { I16(nil) })
	require.Panics(t, func() { U32(short) })
	require.Panics(t, func() { I32(short) })
	require.Panics(t, func() { F32(short) })

	// A window with spare capacity must still be treated as short.
	window := make([]byte, 2, 8)
	require.Panics(t, func() { U32(window[:2:2]) })
	require.Panics(t, func() { U32(window) })
	require.Panics(t, func() { U16(window[:1]) })
}
