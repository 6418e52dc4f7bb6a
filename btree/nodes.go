package btree

// Node is a read-only view of a tree node.
//
// Nodes are immutable once built and may be shared between many trees.
// Leaves hold items, internal nodes hold children together with a cached copy
// of every child's summary.
type Node[I SummarizedItem[S], S any] interface {
	// IsLeaf reports whether the node holds items rather than children.
	IsLeaf() bool
	// Summary returns the cached aggregate of the whole subtree.
	Summary() S
	// Height is 0 for leaves and 1 + child height for internal nodes.
	Height() int
	// Len is the fanout: the number of items (leaf) or children (internal).
	Len() int
	// Count is the number of items in the subtree.
	Count() int
	// ChildAt returns child i of an internal node.
	ChildAt(i int) (Node[I, S], error)
	// ChildSummary returns the cached summary of child i of an internal node.
	ChildSummary(i int) (S, error)
	// ItemAt returns item i of a leaf.
	ItemAt(i int) (I, error)
}

type leafNode[I SummarizedItem[S], S any] struct {
	summary S
	items   []I
}

func (l *leafNode[I, S]) IsLeaf() bool { return true }
func (l *leafNode[I, S]) Summary() S   { return l.summary }
func (l *leafNode[I, S]) Height() int  { return 0 }
func (l *leafNode[I, S]) Len() int     { return len(l.items) }
func (l *leafNode[I, S]) Count() int   { return len(l.items) }

func (l *leafNode[I, S]) ChildAt(int) (Node[I, S], error) {
	return nil, ErrIndexOutOfBounds
}

func (l *leafNode[I, S]) ChildSummary(int) (S, error) {
	var zero S
	return zero, ErrIndexOutOfBounds
}

func (l *leafNode[I, S]) ItemAt(i int) (I, error) {
	if i < 0 || i >= len(l.items) {
		var zero I
		return zero, ErrIndexOutOfBounds
	}
	return l.items[i], nil
}

type innerNode[I SummarizedItem[S], S any] struct {
	summary S
	height  int
	count   int
	// children, sums and counts are parallel: sums[i] and counts[i] are
	// the summary and item count of children[i].
	children []Node[I, S]
	sums     []S
	counts   []int
}

func (n *innerNode[I, S]) IsLeaf() bool { return false }
func (n *innerNode[I, S]) Summary() S   { return n.summary }
func (n *innerNode[I, S]) Height() int  { return n.height }
func (n *innerNode[I, S]) Len() int     { return len(n.children) }
func (n *innerNode[I, S]) Count() int   { return n.count }

func (n *innerNode[I, S]) ChildAt(i int) (Node[I, S], error) {
	if i < 0 || i >= len(n.children) {
		return nil, ErrIndexOutOfBounds
	}
	return n.children[i], nil
}

func (n *innerNode[I, S]) ChildSummary(i int) (S, error) {
	if i < 0 || i >= len(n.sums) {
		var zero S
		return zero, ErrIndexOutOfBounds
	}
	return n.sums[i], nil
}

func (n *innerNode[I, S]) ItemAt(int) (I, error) {
	var zero I
	return zero, ErrIndexOutOfBounds
}

// locate maps a subtree item index to a child slot and a child-local index.
//
// With forInsert set, an index on a seam between two children is routed to
// the left child (remaining <= count), and index == Count() is routed to the
// last child. Otherwise every index is owned by exactly one child
// (remaining < count).
func (n *innerNode[I, S]) locate(index int, forInsert bool) (slot int, local int) {
	assert(len(n.children) > 0, "locate called on internal node without children")
	remaining := index
	for i, c := range n.counts {
		if remaining < c || (forInsert && remaining == c) {
			return i, remaining
		}
		remaining -= c
	}
	assert(false, "locate index exceeds subtree item count")
	return 0, 0
}
