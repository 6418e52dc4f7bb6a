package btree

// DeleteAt removes the item at index and returns a new tree.
//
// Underfull nodes are merged with, or borrow from, an adjacent sibling. An
// internal root left with a single child is replaced by that child, which is
// the only way for the tree to shrink in height.
//
// If index is outside [0, Len()), the receiver is returned unchanged together
// with ErrIndexOutOfBounds. This includes every index on an empty tree.
func (t *Tree[I, S]) DeleteAt(index int) (*Tree[I, S], error) {
	if err := t.checkUsable(); err != nil {
		return nil, err
	}
	if index < 0 || index >= t.Len() {
		return t, ErrIndexOutOfBounds
	}
	root, _ := t.deleteRecursive(t.root, index)
	return t.withRoot(root), nil
}

// DeleteRange removes count items starting at index and returns a new tree.
func (t *Tree[I, S]) DeleteRange(index, count int) (*Tree[I, S], error) {
	if err := t.checkUsable(); err != nil {
		return nil, err
	}
	size := t.Len()
	if index < 0 || count < 0 || index > size || index+count > size {
		return t, ErrIndexOutOfBounds
	}
	switch count {
	case 0:
		return t, nil
	case 1:
		return t.DeleteAt(index)
	}
	left, rest, err := t.SplitAt(index)
	if err != nil {
		return t, err
	}
	_, right, err := rest.SplitAt(count)
	if err != nil {
		return t, err
	}
	return t.withRoot(t.joinRoots(left.root, right.root)), nil
}

// deleteRecursive removes the item at index from subtree n. It returns the
// rebuilt subtree and whether it dropped below its minimum occupancy; the
// caller repairs the occupancy using a sibling.
func (t *Tree[I, S]) deleteRecursive(n Node[I, S], index int) (Node[I, S], bool) {
	switch n := n.(type) {
	case *leafNode[I, S]:
		assert(index >= 0 && index < len(n.items), "deleteRecursive leaf index out of range")
		leaf := t.makeLeaf(removeRange(n.items, index, index+1))
		return leaf, t.underflow(leaf)
	case *innerNode[I, S]:
		slot, local := n.locate(index, false)
		child, underfull := t.deleteRecursive(n.children[slot], local)
		var children []Node[I, S]
		switch {
		case !underfull || len(n.children) == 1:
			children = replaceRange(n.children, slot, slot+1, child)
		case slot > 0:
			pair := t.rebalancePair(n.children[slot-1], child)
			children = replaceRange(n.children, slot-1, slot+1, pair...)
		default:
			pair := t.rebalancePair(child, n.children[slot+1])
			children = replaceRange(n.children, slot, slot+2, pair...)
		}
		inner := t.makeInternal(children...)
		return inner, t.underflow(inner)
	}
	panic("unknown tree node type")
}
