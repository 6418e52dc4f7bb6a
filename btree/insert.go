package btree

// InsertAt inserts items at an item index and returns a new tree. After the
// operation, items[0] is found at index and former items at positions
// >= index are shifted right by len(items).
//
// If index is outside [0, Len()], the receiver is returned unchanged together
// with ErrIndexOutOfBounds.
func (t *Tree[I, S]) InsertAt(index int, items ...I) (*Tree[I, S], error) {
	if err := t.checkUsable(); err != nil {
		return nil, err
	}
	if index < 0 || index > t.Len() {
		return t, ErrIndexOutOfBounds
	}
	if len(items) == 0 {
		return t, nil
	}
	if len(items) < t.cfg.LeafCapacity {
		out := t
		for i, item := range items {
			out = out.insertOneAt(index+i, item)
		}
		return out, nil
	}
	// Large batches are packed into a subtree of their own and spliced in.
	left, right, err := t.SplitAt(index)
	if err != nil {
		return t, err
	}
	middle := t.build(items)
	return t.withRoot(t.joinRoots(t.joinRoots(left.root, middle), right.root)), nil
}

// Append adds items to the end of the sequence.
func (t *Tree[I, S]) Append(items ...I) (*Tree[I, S], error) {
	return t.InsertAt(t.Len(), items...)
}

// insertOneAt inserts a single item, path-copying from the owning leaf up
// to the root. A split of the root is the only way for the tree to grow in
// height.
func (t *Tree[I, S]) insertOneAt(index int, item I) *Tree[I, S] {
	if t.root == nil {
		return t.withRoot(t.makeLeaf([]I{item}))
	}
	left, right := t.insertRecursive(t.root, index, item)
	if right == nil {
		return &Tree[I, S]{cfg: t.cfg, root: left}
	}
	tracer().Debugf("btree: root split, height %d -> %d", t.Height(), t.Height()+1)
	return &Tree[I, S]{cfg: t.cfg, root: t.makeInternal(left, right)}
}

// insertRecursive inserts one item into subtree n. The returned right node is
// non-nil only if the updated subtree had to be split.
func (t *Tree[I, S]) insertRecursive(n Node[I, S], index int, item I) (Node[I, S], Node[I, S]) {
	switch n := n.(type) {
	case *leafNode[I, S]:
		assert(index >= 0 && index <= len(n.items), "insertRecursive leaf index out of range")
		return t.splitOverflow(t.makeLeaf(insertAt(n.items, index, item)))
	case *innerNode[I, S]:
		slot, local := n.locate(index, true)
		left, right := t.insertRecursive(n.children[slot], local, item)
		var children []Node[I, S]
		if right == nil {
			children = replaceRange(n.children, slot, slot+1, left)
		} else {
			children = replaceRange(n.children, slot, slot+1, left, right)
		}
		return t.splitOverflow(t.makeInternal(children...))
	}
	panic("unknown tree node type")
}
