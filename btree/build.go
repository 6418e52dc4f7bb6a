package btree

// Node construction is the only place where summaries are aggregated. Nodes
// are never changed after construction, so cached summaries cannot go stale.

// makeLeaf creates a leaf and computes its summary. The leaf takes ownership
// of items.
func (t *Tree[I, S]) makeLeaf(items []I) *leafNode[I, S] {
	leaf := &leafNode[I, S]{
		summary: t.cfg.Monoid.Zero(),
		items:   items,
	}
	for _, item := range items {
		leaf.summary = t.cfg.Monoid.Add(leaf.summary, item.Summary())
	}
	return leaf
}

// makeInternal creates an internal node over children, which must all have
// the same height. The node takes ownership of the children slice.
func (t *Tree[I, S]) makeInternal(children ...Node[I, S]) *innerNode[I, S] {
	assert(len(children) > 0, "makeInternal called without children")
	inner := &innerNode[I, S]{
		summary:  t.cfg.Monoid.Zero(),
		height:   children[0].Height() + 1,
		children: children,
		sums:     make([]S, len(children)),
		counts:   make([]int, len(children)),
	}
	for i, child := range children {
		assert(child != nil, "makeInternal called with nil child")
		assert(child.Height() == inner.height-1, "makeInternal called with children of unequal height")
		inner.sums[i] = child.Summary()
		inner.counts[i] = child.Count()
		inner.count += inner.counts[i]
		inner.summary = t.cfg.Monoid.Add(inner.summary, inner.sums[i])
	}
	return inner
}

// --- Occupancy -------------------------------------------------------------

func (t *Tree[I, S]) maxFanout(n Node[I, S]) int {
	if n.IsLeaf() {
		return t.cfg.LeafCapacity
	}
	return t.cfg.Degree
}

func (t *Tree[I, S]) minFanout(n Node[I, S]) int {
	if n.IsLeaf() {
		return t.cfg.MinLeafItems()
	}
	return t.cfg.MinChildren()
}

func (t *Tree[I, S]) overflow(n Node[I, S]) bool {
	return n.Len() > t.maxFanout(n)
}

func (t *Tree[I, S]) underflow(n Node[I, S]) bool {
	return n.Len() < t.minFanout(n)
}

// --- Split and merge -------------------------------------------------------

// splitNode partitions the items or children of n at position at, where
// 0 < at < n.Len(). Both halves get freshly computed summaries.
func (t *Tree[I, S]) splitNode(n Node[I, S], at int) (Node[I, S], Node[I, S]) {
	assert(at > 0 && at < n.Len(), "splitNode position out of range")
	switch n := n.(type) {
	case *leafNode[I, S]:
		left := append([]I(nil), n.items[:at]...)
		right := append([]I(nil), n.items[at:]...)
		return t.makeLeaf(left), t.makeLeaf(right)
	case *innerNode[I, S]:
		left := append([]Node[I, S](nil), n.children[:at]...)
		right := append([]Node[I, S](nil), n.children[at:]...)
		return t.makeInternal(left...), t.makeInternal(right...)
	}
	panic("unknown tree node type")
}

// splitOverflow splits an overflowing node in two deterministic halves, the
// left one getting floor(n/2). A node within bounds is returned as is.
func (t *Tree[I, S]) splitOverflow(n Node[I, S]) (Node[I, S], Node[I, S]) {
	if !t.overflow(n) {
		return n, nil
	}
	assert(n.Len() <= 2*t.maxFanout(n), "splitOverflow requires more than one promoted sibling")
	return t.splitNode(n, n.Len()/2)
}

// mergeNodes concatenates two sibling nodes of equal height into one.
// Unequal heights or an oversized result are contract violations.
func (t *Tree[I, S]) mergeNodes(left, right Node[I, S]) Node[I, S] {
	assert(left.Height() == right.Height(), "mergeNodes called with nodes of unequal height")
	assert(left.Len()+right.Len() <= t.maxFanout(left), "mergeNodes result exceeds max fanout")
	return t.joinContents(left, right)
}

// joinContents concatenates two equal-height nodes without checking the
// fanout bound. Oversized results are transient and must be split.
func (t *Tree[I, S]) joinContents(left, right Node[I, S]) Node[I, S] {
	switch l := left.(type) {
	case *leafNode[I, S]:
		r, ok := right.(*leafNode[I, S])
		assert(ok, "joinContents called with leaf and internal node")
		items := make([]I, 0, len(l.items)+len(r.items))
		items = append(items, l.items...)
		items = append(items, r.items...)
		return t.makeLeaf(items)
	case *innerNode[I, S]:
		r, ok := right.(*innerNode[I, S])
		assert(ok, "joinContents called with internal node and leaf")
		assert(l.height == r.height, "joinContents called with nodes of unequal height")
		children := make([]Node[I, S], 0, len(l.children)+len(r.children))
		children = append(children, l.children...)
		children = append(children, r.children...)
		return t.makeInternal(children...)
	}
	panic("unknown tree node type")
}

// rebalancePair restores occupancy bounds for two adjacent siblings where at
// least one may be underfull: they are merged if their contents fit into a
// single node, otherwise contents are redistributed evenly. Siblings which
// are both within bounds are left alone.
func (t *Tree[I, S]) rebalancePair(left, right Node[I, S]) []Node[I, S] {
	total := left.Len() + right.Len()
	if total <= t.maxFanout(left) {
		return []Node[I, S]{t.mergeNodes(left, right)}
	}
	if !t.underflow(left) && !t.underflow(right) {
		return []Node[I, S]{left, right}
	}
	l, r := t.splitNode(t.joinContents(left, right), total/2)
	return []Node[I, S]{l, r}
}

// --- Slice helpers ---------------------------------------------------------

// insertAt inserts values into a slice at idx and returns a new slice.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// removeRange removes the half-open interval [from,to) from a slice and
// returns a new slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	out := make([]T, 0, len(src)-(to-from))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}

// replaceRange replaces src[from:to] with values and returns a new slice.
func replaceRange[T any](src []T, from, to int, values ...T) []T {
	assert(from >= 0 && from <= to && to <= len(src), "replaceRange bounds invalid")
	out := make([]T, 0, len(src)-(to-from)+len(values))
	out = append(out, src[:from]...)
	out = append(out, values...)
	out = append(out, src[to:]...)
	return out
}
