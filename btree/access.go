package btree

// At returns the item at index. An index outside [0, Len()) reports
// ErrIndexOutOfBounds.
func (t *Tree[I, S]) At(index int) (I, error) {
	var zero I
	if t.IsEmpty() || index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	n := t.root
	for {
		switch x := n.(type) {
		case *leafNode[I, S]:
			return x.ItemAt(index)
		case *innerNode[I, S]:
			n, index = x.route(index)
		default:
			panic("unknown tree node type")
		}
	}
}

// First returns the first item of the sequence. The boolean is false for an
// empty tree.
func (t *Tree[I, S]) First() (I, bool) {
	var zero I
	if t.IsEmpty() {
		return zero, false
	}
	n := t.root
	for !n.IsLeaf() {
		n = n.(*innerNode[I, S]).children[0]
	}
	item, err := n.ItemAt(0)
	return item, err == nil
}

// Last returns the last item of the sequence. The boolean is false for an
// empty tree.
func (t *Tree[I, S]) Last() (I, bool) {
	var zero I
	if t.IsEmpty() {
		return zero, false
	}
	n := t.root
	for !n.IsLeaf() {
		inner := n.(*innerNode[I, S])
		n = inner.children[len(inner.children)-1]
	}
	item, err := n.ItemAt(n.Len() - 1)
	return item, err == nil
}

// PrefixSummary returns the aggregated summary of items [0, index).
func (t *Tree[I, S]) PrefixSummary(index int) (S, error) {
	if err := t.checkUsable(); err != nil {
		var zero S
		return zero, err
	}
	acc := t.cfg.Monoid.Zero()
	if index < 0 || index > t.Len() {
		return acc, ErrIndexOutOfBounds
	}
	if index == t.Len() {
		return t.Summary(), nil
	}
	n := t.root
	for {
		switch x := n.(type) {
		case *leafNode[I, S]:
			for _, item := range x.items[:index] {
				acc = t.cfg.Monoid.Add(acc, item.Summary())
			}
			return acc, nil
		case *innerNode[I, S]:
			slot, local := x.locate(index, false)
			for _, s := range x.sums[:slot] {
				acc = t.cfg.Monoid.Add(acc, s)
			}
			n, index = x.children[slot], local
		default:
			panic("unknown tree node type")
		}
	}
}

// route selects the child owning a subtree item index and returns it
// together with the child-local index.
func (n *innerNode[I, S]) route(index int) (Node[I, S], int) {
	slot, local := n.locate(index, false)
	return n.children[slot], local
}
