package fancy

import (
	"fmt"

	"github.com/rony4d/go-fancyslice/utils/bound"
	"github.com/rony4d/go-fancyslice/utils/endian"
)

// Debug is a window into a borrowed buffer that remembers where it is.
//
// Relative offsets are counted from the window start; absolute offsets from
// the start of the original buffer, however many sub-views deep the receiver
// is. Invariant: 0 <= start <= end <= len(data).
type Debug struct {
	data  []byte
	start int
	end   int
}

// PointerSearchResults groups the candidate pointer fields found for a target.
type PointerSearchResults struct {
	// Absolute holds offsets whose u32 value equals the target offset.
	Absolute []int
	// Relative holds offsets whose u32 value plus their own offset equals the target.
	Relative []int
}

// NewDebug returns a view over the whole of data. Spare capacity past
// len(data) is cut off so no window can reach it.
func NewDebug(data []byte) Debug {
	return Debug{
		data:  data[:len(data):len(data)],
		start: 0,
		end:   len(data),
	}
}

func (s Debug) window() []byte {
	return s.data[s.start:s.end:s.end]
}

// RelativeSlice derives a view whose range is measured from the receiver's
// start. An open end runs to the end of the original buffer, past the
// receiver's own window if it is narrower.
func (s Debug) RelativeSlice(r bound.Range) Debug {
	start := s.start + bound.ResolveStart(r.Start)
	end := s.start + bound.ResolveEnd(r.End, len(s.data)-s.start)
	return s.derive(start, end)
}

// AbsoluteSlice derives a view whose range is measured from the start of the
// original buffer.
func (s Debug) AbsoluteSlice(r bound.Range) Debug {
	start, end := r.Resolve(len(s.data))
	return s.derive(start, end)
}

func (s Debug) derive(start, end int) Debug {
	_ = s.data[start:end] // bounds check
	return Debug{
		data:  s.data,
		start: start,
		end:   end,
	}
}

// RelativeBytes returns the window bytes covered by r.
// The result shares memory with the buffer and must not be modified.
func (s Debug) RelativeBytes(r bound.Range) []byte {
	lo, hi := r.Resolve(s.Len())
	return s.window()[lo:hi:hi]
}

// AbsoluteBytes returns the buffer bytes covered by r, ignoring the window.
// The result shares memory with the buffer and must not be modified.
func (s Debug) AbsoluteBytes(r bound.Range) []byte {
	lo, hi := r.Resolve(len(s.data))
	return s.data[lo:hi:hi]
}

func (s Debug) U8(offset int) uint8 {
	return s.window()[offset]
}

func (s Debug) I8(offset int) int8 {
	return int8(s.window()[offset])
}

func (s Debug) U16BE(offset int) uint16 {
	return endian.U16(s.window()[offset:])
}

func (s Debug) I16BE(offset int) int16 {
	return endian.I16(s.window()[offset:])
}

func (s Debug) U32BE(offset int) uint32 {
	return endian.U32(s.window()[offset:])
}

func (s Debug) I32BE(offset int) int32 {
	return endian.I32(s.window()[offset:])
}

func (s Debug) F32BE(offset int) float32 {
	return endian.F32(s.window()[offset:])
}

// Str reads the zero-terminated UTF-8 string at offset. The terminator must
// lie inside the window. Error offsets are absolute.
func (s Debug) Str(offset int) (string, error) {
	return readString(s.window(), offset, s.start)
}

// Len returns the window length.
func (s Debug) Len() int {
	return s.end - s.start
}

// Offset returns the absolute offset of the window start.
func (s Debug) Offset() int {
	return s.start
}

// Hex renders the window bytes covered by r as hex, two bytes per word.
func (s Debug) Hex(r bound.Range) string {
	return hexWords(s.RelativeBytes(r))
}

// ASCII renders the window bytes covered by r, printing '.' for anything
// that is not graphic ASCII.
func (s Debug) ASCII(r bound.Range) string {
	return printable(s.RelativeBytes(r))
}

// String describes the window in absolute hex offsets.
func (s Debug) String() string {
	return fmt.Sprintf("fancy.Debug[0x%x:0x%x of 0x%x]", s.start, s.end, len(s.data))
}

// The Find* scans below walk the whole original buffer, not just the window,
// and return absolute offsets in ascending order. They are linear in the
// buffer size and meant for reverse-engineering layouts, not for parsing.

// FindU8 returns every offset holding v.
func (s Debug) FindU8(v uint8) []int {
	var result []int
	for addr, b := range s.data {
		if b == v {
			result = append(result, addr)
		}
	}
	return result
}

// FindI8 returns every offset holding v.
func (s Debug) FindI8(v int8) []int {
	return s.FindU8(uint8(v))
}

// FindU16 returns every offset where a big-endian uint16 equal to v starts.
func (s Debug) FindU16(v uint16) []int {
	var result []int
	for addr := 0; addr+endian.Size16 <= len(s.data); addr++ {
		if endian.U16(s.data[addr:]) == v {
			result = append(result, addr)
		}
	}
	return result
}

// FindI16 returns every offset where a big-endian int16 equal to v starts.
func (s Debug) FindI16(v int16) []int {
	return s.FindU16(uint16(v))
}

// FindU32 returns every offset where a big-endian uint32 equal to v starts.
func (s Debug) FindU32(v uint32) []int {
	var result []int
	for addr := 0; addr+endian.Size32 <= len(s.data); addr++ {
		if endian.U32(s.data[addr:]) == v {
			result = append(result, addr)
		}
	}
	return result
}

// FindI32 returns every offset where a big-endian int32 equal to v starts.
func (s Debug) FindI32(v int32) []int {
	return s.FindU32(uint32(v))
}

// FindOffsetPointers returns every offset a whose big-endian uint32 value,
// added to a, lands on target: the candidate self-relative pointers to target.
func (s Debug) FindOffsetPointers(target int) []int {
	var result []int
	for addr := 0; addr+endian.Size32 <= len(s.data); addr++ {
		if uint64(addr)+uint64(endian.U32(s.data[addr:])) == uint64(target) {
			result = append(result, addr)
		}
	}
	return result
}

// SearchPointers looks for both absolute and self-relative pointers to target.
func (s Debug) SearchPointers(target int) PointerSearchResults {
	res := PointerSearchResults{
		Relative: s.FindOffsetPointers(target),
	}
	if target >= 0 && uint64(target) <= 0xffffffff {
		res.Absolute = s.FindU32(uint32(target))
	}
	return res
}
