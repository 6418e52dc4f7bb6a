package btree

import (
	"testing"
)

// num is a test item summarized by a count and a running total.
type num int

type numSummary struct {
	Count int
	Total int
}

func (n num) Summary() numSummary {
	return numSummary{Count: 1, Total: int(n)}
}

type numMonoid struct{}

func (numMonoid) Zero() numSummary { return numSummary{} }

func (numMonoid) Add(left, right numSummary) numSummary {
	return numSummary{Count: left.Count + right.Count, Total: left.Total + right.Total}
}

// countDim seeks by item count.
type countDim struct{}

func (countDim) Zero() int                     { return 0 }
func (countDim) Add(acc int, s numSummary) int { return acc + s.Count }
func (countDim) Compare(acc, target int) int   { return acc - target }

// totalDim seeks by the sum of item values.
type totalDim struct{}

func (totalDim) Zero() int                     { return 0 }
func (totalDim) Add(acc int, s numSummary) int { return acc + s.Total }
func (totalDim) Compare(acc, target int) int   { return acc - target }

func newNumTree(t testing.TB, degree, leafCapacity int) *Tree[num, numSummary] {
	t.Helper()
	tree, err := New[num](Config[numSummary]{
		Monoid:       numMonoid{},
		Degree:       degree,
		LeafCapacity: leafCapacity,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func appendNums(t testing.TB, tree *Tree[num, numSummary], from, to int) *Tree[num, numSummary] {
	t.Helper()
	var err error
	for i := from; i < to; i++ {
		tree, err = tree.InsertAt(tree.Len(), num(i))
		if err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}
	return tree
}

func mustCheck(t testing.TB, tree *Tree[num, numSummary]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func assertItems(t testing.TB, tree *Tree[num, numSummary], want []num) {
	t.Helper()
	got := tree.Items()
	if len(got) != len(want) {
		t.Fatalf("item count mismatch: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item mismatch at %d: got=%d want=%d", i, got[i], want[i])
		}
	}
	if tree.Len() != len(want) {
		t.Fatalf("Len mismatch: got=%d want=%d", tree.Len(), len(want))
	}
	total := 0
	for _, n := range want {
		total += int(n)
	}
	if s := tree.Summary(); s.Count != len(want) || s.Total != total {
		t.Fatalf("summary mismatch: got=%+v want count=%d total=%d", s, len(want), total)
	}
}

func seq(from, to int) []num {
	out := make([]num, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, num(i))
	}
	return out
}

// leafDepths collects the depth of every leaf below n.
func leafDepths(n Node[num, numSummary], depth int, out map[int]int) {
	if n.IsLeaf() {
		out[depth]++
		return
	}
	for i := 0; i < n.Len(); i++ {
		child, err := n.ChildAt(i)
		if err != nil {
			panic(err)
		}
		leafDepths(child, depth+1, out)
	}
}

func leftmostLeaf(n Node[num, numSummary]) Node[num, numSummary] {
	for !n.IsLeaf() {
		n, _ = n.ChildAt(0)
	}
	return n
}
