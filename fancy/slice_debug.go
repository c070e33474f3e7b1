//go:build fancydebug

package fancy

// DebugEnabled reports whether Slice is the Debug view.
const DebugEnabled = true

// Slice is the view type of this build: Debug, selected by the fancydebug tag.
type Slice = Debug

// New returns a Slice over the whole of data.
func New(data []byte) Slice {
	return NewDebug(data)
}
