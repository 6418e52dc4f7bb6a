package btree

import (
	"fmt"
	"reflect"
)

// Check validates structural tree invariants:
//
//   - all leaves are at the same depth and internal heights are consistent,
//   - non-root nodes respect their occupancy bounds, the root respects the
//     upper bound, a leaf root is non-empty and an internal root has at least
//     two children,
//   - cached summaries, child summaries and item counts match a fresh
//     recomputation.
//
// Check is meant for tests and debugging; it visits every node.
func (t *Tree[I, S]) Check() error {
	if err := t.checkUsable(); err != nil {
		return err
	}
	if t.root == nil {
		return nil
	}
	if t.root.IsLeaf() && t.root.Len() == 0 {
		return fmt.Errorf("%w: empty leaf root", ErrInvariantViolation)
	}
	if !t.root.IsLeaf() && t.root.Len() < 2 {
		return fmt.Errorf("%w: internal root with %d children", ErrInvariantViolation, t.root.Len())
	}
	_, err := t.checkNode(t.root, true, 0)
	return err
}

func (t *Tree[I, S]) checkNode(n Node[I, S], isRoot bool, depth int) (S, error) {
	var zero S
	if n == nil {
		return zero, fmt.Errorf("%w: nil node at depth %d", ErrInvariantViolation, depth)
	}
	if t.overflow(n) {
		return zero, fmt.Errorf("%w: fanout %d exceeds %d at depth %d",
			ErrInvariantViolation, n.Len(), t.maxFanout(n), depth)
	}
	if !isRoot && t.underflow(n) {
		return zero, fmt.Errorf("%w: fanout %d below %d at depth %d",
			ErrInvariantViolation, n.Len(), t.minFanout(n), depth)
	}
	sum := t.cfg.Monoid.Zero()
	switch x := n.(type) {
	case *leafNode[I, S]:
		for _, item := range x.items {
			sum = t.cfg.Monoid.Add(sum, item.Summary())
		}
	case *innerNode[I, S]:
		if len(x.sums) != len(x.children) || len(x.counts) != len(x.children) {
			return zero, fmt.Errorf("%w: child caches out of sync at depth %d", ErrInvariantViolation, depth)
		}
		count := 0
		for i, child := range x.children {
			if child == nil {
				return zero, fmt.Errorf("%w: nil child %d at depth %d", ErrInvariantViolation, i, depth)
			}
			if child.Height() != x.height-1 {
				return zero, fmt.Errorf("%w: child %d at depth %d has height %d, want %d",
					ErrInvariantViolation, i, depth, child.Height(), x.height-1)
			}
			childSum, err := t.checkNode(child, false, depth+1)
			if err != nil {
				return zero, err
			}
			if !reflect.DeepEqual(childSum, x.sums[i]) {
				return zero, fmt.Errorf("%w: stale child summary %d at depth %d: %v != %v",
					ErrInvariantViolation, i, depth, x.sums[i], childSum)
			}
			if child.Count() != x.counts[i] {
				return zero, fmt.Errorf("%w: stale child count %d at depth %d: %d != %d",
					ErrInvariantViolation, i, depth, x.counts[i], child.Count())
			}
			count += x.counts[i]
			sum = t.cfg.Monoid.Add(sum, x.sums[i])
		}
		if count != x.count {
			return zero, fmt.Errorf("%w: stale item count at depth %d: %d != %d",
				ErrInvariantViolation, depth, x.count, count)
		}
	default:
		return zero, fmt.Errorf("%w: unknown node type %T", ErrInvariantViolation, n)
	}
	if !reflect.DeepEqual(sum, n.Summary()) {
		return zero, fmt.Errorf("%w: stale summary at depth %d: %v != %v",
			ErrInvariantViolation, depth, n.Summary(), sum)
	}
	return sum, nil
}
