package btree

import "iter"

// ForEachItem walks leaf items in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[I, S]) ForEachItem(fn func(item I) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	forEachItemNode(t.root, fn)
}

func forEachItemNode[I SummarizedItem[S], S any](n Node[I, S], fn func(item I) bool) bool {
	switch x := n.(type) {
	case *leafNode[I, S]:
		for _, item := range x.items {
			if !fn(item) {
				return false
			}
		}
	case *innerNode[I, S]:
		for _, child := range x.children {
			if !forEachItemNode(child, fn) {
				return false
			}
		}
	}
	return true
}

// All returns an iterator over (index, item) pairs in sequence order.
func (t *Tree[I, S]) All() iter.Seq2[int, I] {
	return func(yield func(int, I) bool) {
		i := 0
		t.ForEachItem(func(item I) bool {
			ok := yield(i, item)
			i++
			return ok
		})
	}
}

// Items collects all items into a new slice.
func (t *Tree[I, S]) Items() []I {
	out := make([]I, 0, t.Len())
	t.ForEachItem(func(item I) bool {
		out = append(out, item)
		return true
	})
	return out
}
