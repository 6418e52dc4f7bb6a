package btree

import "fmt"

// Cursor seeks items in a tree along a summary dimension.
//
// The dimension must be consistent with the monoid: accumulating the
// summaries of a run of items one by one must yield the same value as
// accumulating their combined summary. Accumulated values must not decrease
// from left to right.
type Cursor[I SummarizedItem[S], S any, K any] struct {
	tree *Tree[I, S]
	dim  Dimension[S, K]
}

// NewCursor creates a cursor for a tree and a dimension.
func NewCursor[I SummarizedItem[S], S any, K any](tree *Tree[I, S], dim Dimension[S, K]) (*Cursor[I, S, K], error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: tree is nil", ErrInvalidConfig)
	}
	if dim == nil {
		return nil, fmt.Errorf("%w: dimension is nil", ErrInvalidDimension)
	}
	return &Cursor[I, S, K]{
		tree: tree,
		dim:  dim,
	}, nil
}

// Seek finds the item covering target.
//
// Every item covers the half-open interval [start, end) of accumulated
// dimension values, where start is the value accumulated over all items to
// its left and end adds the item's own summary. Seek returns the leftmost item
// whose end exceeds target, together with its start; the offset of target
// inside the item is target - start. Items which do not advance the dimension
// cover an empty interval and are never returned.
//
// If no item covers target, Seek returns Len() together with the total
// accumulated value and ErrIndexOutOfBounds.
func (c *Cursor[I, S, K]) Seek(target K) (index int, start K, err error) {
	if c == nil || c.tree == nil || c.dim == nil {
		var zero K
		return 0, zero, fmt.Errorf("%w: cursor not initialized", ErrInvalidDimension)
	}
	acc := c.dim.Zero()
	if c.tree.IsEmpty() {
		return 0, acc, ErrIndexOutOfBounds
	}
	n := c.tree.root
	for {
		switch x := n.(type) {
		case *leafNode[I, S]:
			for i, item := range x.items {
				next := c.dim.Add(acc, item.Summary())
				if c.dim.Compare(next, target) > 0 {
					return index + i, acc, nil
				}
				acc = next
			}
			return c.tree.Len(), acc, ErrIndexOutOfBounds
		case *innerNode[I, S]:
			slot := -1
			for i, s := range x.sums {
				next := c.dim.Add(acc, s)
				if c.dim.Compare(next, target) > 0 {
					slot = i
					break
				}
				acc = next
				index += x.counts[i]
			}
			if slot < 0 {
				return c.tree.Len(), acc, ErrIndexOutOfBounds
			}
			n = x.children[slot]
		default:
			panic("unknown tree node type")
		}
	}
}

// FindBySummary is a shortcut for seeking target along dim in tree.
// See Cursor.Seek for the semantics.
func FindBySummary[I SummarizedItem[S], S any, K any](tree *Tree[I, S], dim Dimension[S, K], target K) (int, K, error) {
	c, err := NewCursor(tree, dim)
	if err != nil {
		var zero K
		return 0, zero, err
	}
	return c.Seek(target)
}
