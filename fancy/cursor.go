package fancy

import (
	"github.com/rony4d/go-fancyslice/utils/bound"
	"github.com/rony4d/go-fancyslice/utils/endian"
)

// Cursor reads a Slice front to back, advancing past every value it returns.
//
// It follows the view's error model: running past the end panics, only Str
// returns an error. A failed Str leaves the position unchanged.
type Cursor struct {
	view Slice
	pos  int
}

// NewCursor starts a Cursor at the first byte of view.
func NewCursor(view Slice) *Cursor {
	return &Cursor{view: view}
}

// advance reserves n bytes and returns the offset they start at.
func (c *Cursor) advance(n int) int {
	at := c.pos
	_ = c.view.RelativeBytes(bound.Span(at, at+n)) // bounds check
	c.pos += n
	return at
}

func (c *Cursor) U8() uint8 {
	return c.view.U8(c.advance(1))
}

func (c *Cursor) I8() int8 {
	return c.view.I8(c.advance(1))
}

func (c *Cursor) U16BE() uint16 {
	return c.view.U16BE(c.advance(endian.Size16))
}

func (c *Cursor) I16BE() int16 {
	return c.view.I16BE(c.advance(endian.Size16))
}

func (c *Cursor) U32BE() uint32 {
	return c.view.U32BE(c.advance(endian.Size32))
}

func (c *Cursor) I32BE() int32 {
	return c.view.I32BE(c.advance(endian.Size32))
}

func (c *Cursor) F32BE() float32 {
	return c.view.F32BE(c.advance(endian.Size32))
}

// Str reads a zero-terminated string and moves past its terminator.
func (c *Cursor) Str() (string, error) {
	s, err := c.view.Str(c.pos)
	if err != nil {
		return "", err
	}
	c.pos += len(s) + 1
	return s, nil
}

// Take returns a sub-view of the next n bytes and moves past them.
func (c *Cursor) Take(n int) Slice {
	at := c.advance(n)
	return c.view.RelativeSlice(bound.Span(at, at+n))
}

// Skip moves n bytes forward.
func (c *Cursor) Skip(n int) {
	c.advance(n)
}

// Seek moves to offset, relative to the start of the view.
// Seeking to Len() is allowed and leaves the cursor empty.
func (c *Cursor) Seek(offset int) {
	_ = c.view.RelativeBytes(bound.To(offset))
	c.pos = offset
}

// Position returns the current offset relative to the start of the view.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns how many bytes are left.
func (c *Cursor) Remaining() int {
	return c.view.Len() - c.pos
}

// Empty reports whether the cursor has reached the end of the view.
func (c *Cursor) Empty() bool {
	return c.Remaining() == 0
}
