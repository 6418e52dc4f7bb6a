/*
Package textfile loads UTF-8 text files into a text.Text.

A background goroutine reads the file in fragments, re-aligning fragment
borders to character boundaries, while the caller assembles the text.
Clients interested in the progress of a load may subscribe to a Loader
before starting it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package textfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sumtree'
func tracer() tracing.Trace {
	return tracing.Select("sumtree")
}

var (
	// ErrNotRegularFile is returned for directories, devices and the like.
	ErrNotRegularFile = errors.New("textfile: not a regular file")
	// ErrInvalidUTF8 is returned for files which are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")
)
