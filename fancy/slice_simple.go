//go:build !fancydebug

package fancy

// DebugEnabled reports whether Slice is the Debug view.
const DebugEnabled = false

// Slice is the view type of this build: Simple. Build with -tags fancydebug
// to get Debug instead.
type Slice = Simple

// New returns a Slice over the whole of data.
func New(data []byte) Slice {
	return NewSimple(data)
}
