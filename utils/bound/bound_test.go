package bound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve checks every bound kind on both ends against a sequence of length 10.
func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		r      Range
		lo, hi int
	}{
		{"lo..hi", Span(2, 5), 2, 5},
		{"lo..=hi", SpanInclusive(2, 5), 2, 6},
		{"lo..", From(3), 3, 10},
		{"..hi", To(4), 0, 4},
		{"..=hi", ToInclusive(4), 0, 5},
		{"..", Full(), 0, 10},
		{"empty", Span(7, 7), 7, 7},
		{"excluded start", Range{Start: Exclusive(1), End: Open()}, 2, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := tc.r.Resolve(10)
			assert.Equal(t, tc.lo, lo, "start")
			assert.Equal(t, tc.hi, hi, "end")
		})
	}
}

// TestResolveEnd_ExclusiveIsOnePastLast pins the convention chosen for the
// excluded end bound: it already is one past the last byte, no adjustment.
func TestResolveEnd_ExclusiveIsOnePastLast(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}

	lo, hi := Span(1, 4).Resolve(len(data))
	require.Equal(t, []byte{1, 2, 3}, data[lo:hi])

	lo, hi = SpanInclusive(1, 4).Resolve(len(data))
	require.Equal(t, []byte{1, 2, 3, 4}, data[lo:hi])

	require.Equal(t, 42, ResolveEnd(Open(), 42))
	require.Equal(t, 0, ResolveStart(Open()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "2..5", Span(2, 5).String())
	assert.Equal(t, "2..=5", SpanInclusive(2, 5).String())
	assert.Equal(t, "3..", From(3).String())
	assert.Equal(t, "..4", To(4).String())
	assert.Equal(t, "..=4", ToInclusive(4).String())
	assert.Equal(t, "..", Full().String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Range
	}{
		{"4..8", Span(4, 8)},
		{"4..=7", SpanInclusive(4, 7)},
		{"0x10..", From(16)},
		{"..8", To(8)},
		{"..=0x0f", ToInclusive(15)},
		{"..", Full()},
		{" 1..2 ", Span(1, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("round trip", func(t *testing.T) {
		for _, r := range []Range{Span(0, 3), SpanInclusive(9, 9), From(1), To(2), ToInclusive(5), Full()} {
			got, err := Parse(r.String())
			require.NoError(t, err)
			require.Equal(t, r, got)
		}
	})
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"", "4", "4-8", "a..b", "..=", "4..=", "-1..2", "..."} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrMalformedRange)
		})
	}
}
