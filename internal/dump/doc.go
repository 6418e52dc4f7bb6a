/*
Package dump renders the node structure of B+ sum-trees for humans, either
as an indented outline on a console or as nested HTML lists.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sumtree'
func tracer() tracing.Trace {
	return tracing.Select("sumtree")
}
