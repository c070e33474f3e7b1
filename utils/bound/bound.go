package bound

// This package turns range expressions into concrete byte offsets.
//
// Go has no native range syntax, so a Range is spelled out as two Bounds, each
// one either open (Unbounded) or anchored at an offset that is Included or
// Excluded from the range. The resolution rules follow the usual half-open
// convention:
//
//   start: Included(a) -> a      Excluded(a) -> a+1   Unbounded -> 0
//   end:   Excluded(b) -> b      Included(b) -> b+1   Unbounded -> caller default
//
// so `Span(2, 5)` covers bytes 2,3,4 and `SpanInclusive(2, 5)` covers 2,3,4,5.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind tells how a Bound relates to its offset.
type Kind uint8

const (
	Unbounded Kind = iota
	Included
	Excluded
)

func (k Kind) String() string {
	switch k {
	case Unbounded:
		return "unbounded"
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return "unknown"
	}
}

type (
	// Bound is one end of a Range.
	Bound struct {
		Kind Kind
		At   int
	}

	// Range is a pair of bounds over a byte sequence.
	Range struct {
		Start Bound
		End   Bound
	}
)

// ErrMalformedRange is returned by Parse for text that is not a range expression.
var ErrMalformedRange = errors.New("malformed range: expected lo..hi, lo..=hi, lo.., ..hi or ..")

// Inclusive returns a bound that includes offset at.
func Inclusive(at int) Bound { return Bound{Kind: Included, At: at} }

// Exclusive returns a bound that excludes offset at.
func Exclusive(at int) Bound { return Bound{Kind: Excluded, At: at} }

// Open returns an unbounded bound.
func Open() Bound { return Bound{Kind: Unbounded} }

// Span is lo..hi: from lo up to but not including hi.
func Span(lo, hi int) Range { return Range{Start: Inclusive(lo), End: Exclusive(hi)} }

// SpanInclusive is lo..=hi.
func SpanInclusive(lo, hi int) Range { return Range{Start: Inclusive(lo), End: Inclusive(hi)} }

// From is lo.. : everything from lo to the end.
func From(lo int) Range { return Range{Start: Inclusive(lo), End: Open()} }

// To is ..hi.
func To(hi int) Range { return Range{Start: Open(), End: Exclusive(hi)} }

// ToInclusive is ..=hi.
func ToInclusive(hi int) Range { return Range{Start: Open(), End: Inclusive(hi)} }

// Full is .. : the whole sequence.
func Full() Range { return Range{Start: Open(), End: Open()} }

// ResolveStart returns the first offset covered by a start bound.
func ResolveStart(b Bound) int {
	switch b.Kind {
	case Included:
		return b.At
	case Excluded:
		return b.At + 1
	default:
		return 0
	}
}

// ResolveEnd returns the offset one past the last byte covered by an end
// bound. An unbounded end resolves to or.
func ResolveEnd(b Bound, or int) int {
	switch b.Kind {
	case Included:
		return b.At + 1
	case Excluded:
		return b.At
	default:
		return or
	}
}

// Resolve returns the half-open [lo, hi) offsets of r inside a sequence of
// the given length. No clamping is done: the caller slices with the result and
// gets a bounds panic for a range that does not fit.
func (r Range) Resolve(length int) (lo, hi int) {
	return ResolveStart(r.Start), ResolveEnd(r.End, length)
}

// String renders r in the notation accepted by Parse.
func (r Range) String() string {
	var sb strings.Builder
	switch r.Start.Kind {
	case Included:
		sb.WriteString(strconv.Itoa(r.Start.At))
	case Excluded:
		sb.WriteString(strconv.Itoa(r.Start.At + 1))
	}
	sb.WriteString("..")
	switch r.End.Kind {
	case Included:
		sb.WriteString("=")
		sb.WriteString(strconv.Itoa(r.End.At))
	case Excluded:
		sb.WriteString(strconv.Itoa(r.End.At))
	}
	return sb.String()
}

// Parse reads a range expression such as "4..8", "4..=7", "0x10..", "..8" or
// "..". Offsets are decimal or 0x-prefixed hex.
func Parse(s string) (Range, error) {
	s = strings.TrimSpace(s)
	i := strings.Index(s, "..")
	if i < 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}
	lo, hi := s[:i], s[i+2:]

	r := Full()
	if lo != "" {
		v, err := parseOffset(lo)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, s, err)
		}
		r.Start = Inclusive(v)
	}
	if hi != "" {
		inclusive := strings.HasPrefix(hi, "=")
		if inclusive {
			hi = hi[1:]
		}
		v, err := parseOffset(hi)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, s, err)
		}
		if inclusive {
			r.End = Inclusive(v)
		} else {
			r.End = Exclusive(v)
		}
	}
	return r, nil
}

func parseOffset(s string) (int, error) {
	v, err := strconv.ParseUint(s, 0, 31)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
