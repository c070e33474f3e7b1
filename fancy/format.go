package fancy

import (
	"encoding/hex"
	"strings"
)

// hexWords renders data as lowercase hex, two bytes per space separated word.
func hexWords(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data)*2 + len(data)/2)

	var pair [2]byte
	for i := range data {
		if i != 0 && i%2 == 0 {
			sb.WriteByte(' ')
		}
		hex.Encode(pair[:], data[i:i+1])
		sb.Write(pair[:])
	}
	return sb.String()
}

// printable renders graphic ASCII bytes as-is and everything else, space
// included, as '.'.
func printable(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		if b > ' ' && b < 0x7f {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
