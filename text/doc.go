/*
Package text implements a persistent UTF-8 text buffer on top of a B+
sum-tree of text chunks.

Positions are byte offsets and have to fall on character boundaries. Lines
are counted from 0 and end after a '\n'; a text with k newlines has k+1
lines, the last of which may be empty.

Every edit returns a new Text and leaves the receiver untouched. Versions of
a text share all chunks not affected by an edit.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package text

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sumtree'
func tracer() tracing.Trace {
	return tracing.Select("sumtree")
}

var (
	// ErrIndexOutOfBounds is returned for byte positions or line numbers
	// outside a text.
	ErrIndexOutOfBounds = errors.New("text: index out of bounds")
	// ErrNotCharBoundary is returned for byte positions inside a character.
	ErrNotCharBoundary = errors.New("text: position is not a char boundary")
)
