package fancy

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Errors returned by Str. These are the only recoverable failures of a view:
// every other out-of-window access panics.
var (
	ErrUnterminated = errors.New("string was not terminated")
	ErrInvalidText  = errors.New("invalid text encoding")
)

// TextError reports a string whose bytes are not valid UTF-8.
type TextError struct {
	// Offset is where the string starts: absolute for Debug, window-relative for Simple.
	Offset int
	// Index is the position of the first invalid byte, counted from Offset.
	Index int
	// Err is the decoder diagnostic (encoding.ErrInvalidUTF8).
	Err error
}

func (e *TextError) Error() string {
	return fmt.Sprintf("%v: string at offset %d, byte %d: %v", ErrInvalidText, e.Offset, e.Index, e.Err)
}

func (e *TextError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidText) hold for every TextError.
func (e *TextError) Is(target error) bool { return target == ErrInvalidText }

// readString decodes the zero-terminated string at window[offset:].
// origin is added to offset when reporting errors.
func readString(window []byte, offset, origin int) (string, error) {
	data := window[offset:]
	n := bytes.IndexByte(data, 0)
	if n < 0 {
		return "", fmt.Errorf("%w: offset %d", ErrUnterminated, origin+offset)
	}
	raw := data[:n]
	if !utf8.Valid(raw) {
		_, pos, err := transform.Bytes(encoding.UTF8Validator, raw)
		return "", &TextError{Offset: origin + offset, Index: pos, Err: err}
	}
	return string(raw), nil
}
