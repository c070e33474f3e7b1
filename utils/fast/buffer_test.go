package fast

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWriter_BigEndian verifies every typed append lands in big-endian order.
func TestWriter_BigEndian(t *testing.T) {
	require := require.New(t)

	w := NewWriter(make([]byte, 0, 32))
	w.WriteByte(0x04)
	w.U16(0x0103)
	w.I16(-2)
	w.U32(0xdeadbeef)
	w.I32(-1)
	w.F32(1.5)

	require.Equal([]byte{
		0x04,
		0x01, 0x03,
		0xff, 0xfe,
		0xde, 0xad, 0xbe, 0xef,
		0xff, 0xff, 0xff, 0xff,
		0x3f, 0xc0, 0x00, 0x00,
	}, w.Bytes())
	require.Equal(17, w.Len())
}

func TestWriter_StrAndPad(t *testing.T) {
	w := NewWriter(nil)
	w.Str("hi!")
	w.Str("")
	w.Pad(3)
	w.Write([]byte{9})

	require.Equal(t, []byte{'h', 'i', '!', 0, 0, 0, 0, 0, 9}, w.Bytes())
}

// TestWriter_PatchU32 lays out a self-relative pointer whose target is only
// known after the payload is written.
func TestWriter_PatchU32(t *testing.T) {
	require := require.New(t)

	w := NewWriter(nil)
	w.U32(0xAAAAAAAA)
	ptr := w.Mark()
	w.U32(0) // placeholder
	w.Pad(6)
	target := w.Mark()
	w.Str("name")

	w.PatchU32(ptr, uint32(target-ptr))

	got := binary.BigEndian.Uint32(w.Bytes()[ptr:])
	require.Equal(uint32(10), got)
	require.Equal(ptr+int(got), target)
	require.Equal(uint32(0xAAAAAAAA), binary.BigEndian.Uint32(w.Bytes()))

	require.Panics(func() { w.PatchU32(w.Len()-2, 1) })
}

func TestWriter_NilBuffer(t *testing.T) {
	// append works on nil slices
	w := NewWriter(nil)
	w.WriteByte(0xAA)
	require.Equal(t, []byte{0xAA}, w.Bytes())
}

// Benchmark compares typed appends against bytes.Buffer with encoding/binary.
func Benchmark(b *testing.B) {
	b.Run("Std", func(b *testing.B) {
		w := bytes.NewBuffer(make([]byte, 0, 4*b.N))
		for i := 0; i < b.N; i++ {
			_ = binary.Write(w, binary.BigEndian, uint32(i))
		}
		require.Equal(b, 4*b.N, w.Len())
	})
	b.Run("Fast", func(b *testing.B) {
		w := NewWriter(make([]byte, 0, 4*b.N))
		for i := 0; i < b.N; i++ {
			w.U32(uint32(i))
		}
		require.Equal(b, 4*b.N, w.Len())
	})
}
