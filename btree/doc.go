/*
Package btree provides a persistent B+ sum-tree for ordered sequences.

The tree is an ordered list, not a key/value map: items are addressed by
their position. Every node caches an aggregate summary of its subtree, which is
combined by a client-supplied monoid. Summaries make it possible to locate
items by any monotonic measure over the sequence (byte length, line count,
item count) in logarithmic time, in addition to plain positional access.

Trees are immutable. Every edit (InsertAt, DeleteAt, SplitAt, Concat) path-copies
the nodes from the affected leaf up to the root and shares everything else
with the tree it was derived from. Older trees therefore stay valid and may be
retained as cheap snapshots, and any number of goroutines may read the same
tree without synchronization.

Shape rules:
  - all leaves are at the same depth,
  - non-root nodes hold between MAX/2 and MAX items (leaves) or children
    (internal nodes), where MAX is LeafCapacity or Degree respectively,
  - the root may hold fewer; an internal root always holds at least two
    children,
  - splits are deterministic (the left half gets floor(n/2)), so the same
    sequence of operations always yields the same tree shape.

Summary model:
  - items implement SummarizedItem[S],
  - a SummaryMonoid[S] aggregates summaries (Zero is the identity, Add is
    associative),
  - Dimension[S, K] projects summaries onto a seekable measure K.

Trees which only need positional access may use the trivial Unit summary,
see Plain.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'sumtree'
func tracer() tracing.Trace {
	return tracing.Select("sumtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
