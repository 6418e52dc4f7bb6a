package btree

import "fmt"

// SplitAt splits a tree at an item index: the left tree holds items
// [0, index), the right tree holds items [index, Len()).
//
// Only nodes on the split seam are rebuilt, both results satisfy all shape
// rules. If index is outside [0, Len()], the receiver is returned as both
// results together with ErrIndexOutOfBounds.
func (t *Tree[I, S]) SplitAt(index int) (*Tree[I, S], *Tree[I, S], error) {
	if err := t.checkUsable(); err != nil {
		return nil, nil, err
	}
	size := t.Len()
	if index < 0 || index > size {
		return t, t, ErrIndexOutOfBounds
	}
	empty := &Tree[I, S]{cfg: t.cfg}
	switch index {
	case 0:
		return empty, t, nil
	case size:
		return t, empty, nil
	}
	left, right := t.splitRecursive(t.root, index)
	return t.withRoot(left), t.withRoot(right), nil
}

// Concat appends other to t and returns a new tree.
//
// Trees must share their fanout configuration; they are expected to share
// their monoid as well.
func (t *Tree[I, S]) Concat(other *Tree[I, S]) (*Tree[I, S], error) {
	if err := t.checkUsable(); err != nil {
		return nil, err
	}
	if err := other.checkUsable(); err != nil {
		return nil, err
	}
	if !t.cfg.sameShape(other.cfg) {
		return nil, fmt.Errorf("%w: degree/leaf capacity %d/%d vs %d/%d", ErrIncompatibleTrees,
			t.cfg.Degree, t.cfg.LeafCapacity, other.cfg.Degree, other.cfg.LeafCapacity)
	}
	if other.IsEmpty() {
		return t, nil
	}
	if t.IsEmpty() {
		return other, nil
	}
	joined := t.withRoot(t.joinRoots(t.root, other.root))
	tracer().Debugf("btree: concat heights %d + %d -> %d", t.Height(), other.Height(), joined.Height())
	return joined, nil
}

// splitRecursive splits subtree n before item index, 0 < index < n.Count().
// Both results are valid tree roots or nil.
func (t *Tree[I, S]) splitRecursive(n Node[I, S], index int) (Node[I, S], Node[I, S]) {
	switch n := n.(type) {
	case *leafNode[I, S]:
		left := append([]I(nil), n.items[:index]...)
		right := append([]I(nil), n.items[index:]...)
		return t.leafOrNil(left), t.leafOrNil(right)
	case *innerNode[I, S]:
		slot, local := n.locate(index, false)
		var childLeft, childRight Node[I, S]
		if local == 0 {
			childRight = n.children[slot]
		} else {
			childLeft, childRight = t.splitRecursive(n.children[slot], local)
		}
		left := t.joinRoots(t.groupRoot(n.children[:slot]), childLeft)
		right := t.joinRoots(childRight, t.groupRoot(n.children[slot+1:]))
		return left, right
	}
	panic("unknown tree node type")
}

func (t *Tree[I, S]) leafOrNil(items []I) Node[I, S] {
	if len(items) == 0 {
		return nil
	}
	return t.makeLeaf(items)
}

// groupRoot turns a run of valid siblings into a valid root.
func (t *Tree[I, S]) groupRoot(siblings []Node[I, S]) Node[I, S] {
	switch len(siblings) {
	case 0:
		return nil
	case 1:
		return siblings[0]
	}
	return t.makeInternal(append([]Node[I, S](nil), siblings...)...)
}

// joinRoots concatenates two valid roots of possibly different heights into
// a single valid root. Either argument may be nil.
func (t *Tree[I, S]) joinRoots(left, right Node[I, S]) Node[I, S] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	var nodes []Node[I, S]
	if left.Height() >= right.Height() {
		nodes = t.joinRight(left, right)
	} else {
		nodes = t.joinLeft(left, right)
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	return t.makeInternal(nodes...)
}

// joinRight hangs right (a root no taller than left) onto the right edge of
// left. It returns one or two nodes of left's height.
//
// At the level where heights match, right meets its new left sibling and the
// pair is rebalanced, which repairs a possibly underfull root. Overflow on the
// way back up splits like an insertion does.
func (t *Tree[I, S]) joinRight(left, right Node[I, S]) []Node[I, S] {
	if left.Height() == right.Height() {
		return t.rebalancePair(left, right)
	}
	inner := left.(*innerNode[I, S])
	last := len(inner.children) - 1
	joined := t.joinRight(inner.children[last], right)
	return t.splitToSlice(t.makeInternal(replaceRange(inner.children, last, last+1, joined...)...))
}

// joinLeft is the mirror image of joinRight: left (a root lower than right)
// is hung onto the left edge of right.
func (t *Tree[I, S]) joinLeft(left, right Node[I, S]) []Node[I, S] {
	if left.Height() == right.Height() {
		return t.rebalancePair(left, right)
	}
	inner := right.(*innerNode[I, S])
	joined := t.joinLeft(left, inner.children[0])
	return t.splitToSlice(t.makeInternal(replaceRange(inner.children, 0, 1, joined...)...))
}

func (t *Tree[I, S]) splitToSlice(n Node[I, S]) []Node[I, S] {
	left, right := t.splitOverflow(n)
	if right == nil {
		return []Node[I, S]{left}
	}
	return []Node[I, S]{left, right}
}
