package btree

import (
	"fmt"
)

// Tree is a persistent B+ sum-tree over items of type I, aggregating
// summaries of type S.
//
// A Tree value is never modified. Operations which edit the sequence return a
// new Tree sharing all untouched nodes with the receiver, which stays valid.
// The zero-item tree is valid and reports absence for First, Last and At.
type Tree[I SummarizedItem[S], S any] struct {
	cfg  Config[S]
	root Node[I, S] // nil for the empty tree
}

// New creates an empty tree with validated configuration.
func New[I SummarizedItem[S], S any](cfg Config[S]) (*Tree[I, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[I, S]{cfg: cfg.normalized()}, nil
}

// FromItems creates a tree holding items in order. Nodes are packed bottom-up
// with evenly distributed occupancy, which is cheaper than repeated InsertAt.
func FromItems[I SummarizedItem[S], S any](cfg Config[S], items ...I) (*Tree[I, S], error) {
	t, err := New[I, S](cfg)
	if err != nil {
		return nil, err
	}
	return t.withRoot(t.build(items)), nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[I, S]) Config() Config[S] {
	return t.cfg
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[I, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[I, S]) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.Count()
}

// Height returns the number of levels of the tree: 0 for the empty tree,
// 1 for a tree consisting of a single leaf.
func (t *Tree[I, S]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.Height() + 1
}

// Summary returns the root summary, or the monoid's Zero for an empty tree.
func (t *Tree[I, S]) Summary() S {
	if t == nil || t.cfg.Monoid == nil {
		var zero S
		return zero
	}
	if t.root == nil {
		return t.cfg.Monoid.Zero()
	}
	return t.root.Summary()
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[I, S]) Root() Node[I, S] {
	if t.IsEmpty() {
		return nil
	}
	return t.root
}

// withRoot wraps a root node into a new tree with the receiver's
// configuration, applying the root rules: an empty leaf is the empty tree and
// an internal root with a single child is replaced by that child.
func (t *Tree[I, S]) withRoot(root Node[I, S]) *Tree[I, S] {
	for root != nil {
		if root.IsLeaf() {
			if root.Len() == 0 {
				root = nil
			}
			break
		}
		if root.Len() != 1 {
			break
		}
		tracer().Debugf("btree: collapsing single-child root of height %d", root.Height())
		root = root.(*innerNode[I, S]).children[0]
	}
	return &Tree[I, S]{cfg: t.cfg, root: root}
}

// build packs items into a fresh subtree and returns its root, or nil if
// there are no items.
func (t *Tree[I, S]) build(items []I) Node[I, S] {
	if len(items) == 0 {
		return nil
	}
	level := pack(len(items), t.cfg.LeafCapacity, func(from, to int) Node[I, S] {
		return t.makeLeaf(append([]I(nil), items[from:to]...))
	})
	for len(level) > 1 {
		below := level
		level = pack(len(below), t.cfg.Degree, func(from, to int) Node[I, S] {
			return t.makeInternal(append([]Node[I, S](nil), below[from:to]...)...)
		})
	}
	return level[0]
}

// pack distributes n entries into the least number of groups of size <= limit,
// with group sizes differing by at most one. With more than one group, every
// group holds at least limit/2 entries.
func pack[I SummarizedItem[S], S any](n, limit int, mk func(from, to int) Node[I, S]) []Node[I, S] {
	groups := (n + limit - 1) / limit
	out := make([]Node[I, S], 0, groups)
	from := 0
	for g := 0; g < groups; g++ {
		size := n / groups
		if g < n%groups {
			size++
		}
		out = append(out, mk(from, from+size))
		from += size
	}
	return out
}

func (t *Tree[I, S]) checkUsable() error {
	if t == nil || t.cfg.Monoid == nil {
		return fmt.Errorf("%w: nil or unconfigured tree", ErrInvalidConfig)
	}
	return nil
}
