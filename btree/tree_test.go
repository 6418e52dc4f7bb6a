package btree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []Config[numSummary]{
		{},
		{Monoid: numMonoid{}, Degree: 3},
		{Monoid: numMonoid{}, LeafCapacity: 1},
		{Monoid: numMonoid{}, Degree: MaxFanout + 1},
	}
	for i, cfg := range cases {
		if _, err := New[num](cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	tree := newNumTree(t, 0, 0)
	cfg := tree.Config()
	if cfg.Degree != DefaultDegree || cfg.LeafCapacity != DefaultDegree {
		t.Fatalf("unexpected normalized config: degree=%d leaf=%d", cfg.Degree, cfg.LeafCapacity)
	}
	if cfg.MinChildren() != DefaultDegree/2 || cfg.MinLeafItems() != DefaultDegree/2 {
		t.Fatalf("unexpected min fill: %d/%d", cfg.MinChildren(), cfg.MinLeafItems())
	}
}

func TestEmptyTree(t *testing.T) {
	tree := newNumTree(t, 0, 0)
	mustCheck(t, tree)
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if _, ok := tree.First(); ok {
		t.Fatalf("expected First to report absence")
	}
	if _, ok := tree.Last(); ok {
		t.Fatalf("expected Last to report absence")
	}
	if _, err := tree.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds from At, got %v", err)
	}
	if s := tree.Summary(); s != (numSummary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	out, err := tree.DeleteAt(0)
	if !errors.Is(err, ErrIndexOutOfBounds) || out != tree {
		t.Fatalf("expected unchanged tree and ErrIndexOutOfBounds, got %v", err)
	}
	if tree.Root() != nil {
		t.Fatalf("expected nil root for empty tree")
	}
}

func TestNilTreeIsEmpty(t *testing.T) {
	var tree *Tree[num, numSummary]
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("nil tree should behave like an empty tree")
	}
	if _, err := tree.InsertAt(0, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for insert into nil tree, got %v", err)
	}
}

func TestLeafCapacityTwoScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := newNumTree(t, 0, 2)
	var err error
	for _, n := range []num{10, 20, 30, 40, 50} {
		tree, err = tree.InsertAt(tree.Len(), n)
		if err != nil {
			t.Fatalf("insert %d failed: %v", n, err)
		}
		mustCheck(t, tree)
	}
	if tree.Height() != 2 {
		t.Fatalf("expected height 2, got %d", tree.Height())
	}
	if tree.Len() != 5 {
		t.Fatalf("expected len 5, got %d", tree.Len())
	}
	if item, err := tree.At(2); err != nil || item != 30 {
		t.Fatalf("expected At(2) == 30, got %d (%v)", item, err)
	}
	if item, ok := tree.First(); !ok || item != 10 {
		t.Fatalf("expected First() == 10, got %d", item)
	}
	if item, ok := tree.Last(); !ok || item != 50 {
		t.Fatalf("expected Last() == 50, got %d", item)
	}
	for i := 0; i < 5; i++ {
		tree, err = tree.DeleteAt(0)
		if err != nil {
			t.Fatalf("delete #%d failed: %v", i, err)
		}
		mustCheck(t, tree)
	}
	if !tree.IsEmpty() {
		t.Fatalf("expected empty tree, len=%d", tree.Len())
	}
	if _, ok := tree.First(); ok {
		t.Fatalf("expected First() to report absence")
	}
}

func TestInsertAtOutOfRangeKeepsTree(t *testing.T) {
	tree := appendNums(t, newNumTree(t, 4, 2), 0, 10)
	for _, index := range []int{-1, 11} {
		out, err := tree.InsertAt(index, 99)
		if !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("InsertAt(%d): expected ErrIndexOutOfBounds, got %v", index, err)
		}
		if out != tree {
			t.Fatalf("InsertAt(%d): expected receiver to be returned unchanged", index)
		}
	}
	assertItems(t, tree, seq(0, 10))
}

func TestInsertNoOpReturnsSameTree(t *testing.T) {
	tree := appendNums(t, newNumTree(t, 4, 2), 0, 3)
	out, err := tree.InsertAt(1)
	if err != nil || out != tree {
		t.Fatalf("expected no-op insert to return the receiver, err=%v", err)
	}
}

func TestRoundTripAppend(t *testing.T) {
	for _, shape := range [][2]int{{4, 2}, {4, 3}, {5, 4}, {0, 0}} {
		tree := appendNums(t, newNumTree(t, shape[0], shape[1]), 0, 1000)
		mustCheck(t, tree)
		for i := 0; i < 1000; i++ {
			item, err := tree.At(i)
			if err != nil || item != num(i) {
				t.Fatalf("shape %v: At(%d) = %d (%v)", shape, i, item, err)
			}
		}
		if _, err := tree.At(1000); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Fatalf("shape %v: expected At(len) to fail, got %v", shape, err)
		}
	}
}

func TestInsertPreservesOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := newNumTree(t, 4, 3)
	var model []num
	for i := 0; i < 500; i++ {
		index := r.Intn(len(model) + 1)
		var err error
		tree, err = tree.InsertAt(index, num(i))
		if err != nil {
			t.Fatalf("InsertAt(%d) failed: %v", index, err)
		}
		model = insertAt(model, index, num(i))
		if item, err := tree.At(index); err != nil || item != num(i) {
			t.Fatalf("At(%d) after insert = %d (%v), want %d", index, item, err, i)
		}
		mustCheck(t, tree)
	}
	assertItems(t, tree, model)
}

func TestDeleteUndoesInsert(t *testing.T) {
	base := appendNums(t, newNumTree(t, 4, 2), 0, 200)
	for _, index := range []int{0, 1, 57, 100, 199, 200} {
		inserted, err := base.InsertAt(index, 999)
		if err != nil {
			t.Fatalf("InsertAt(%d) failed: %v", index, err)
		}
		restored, err := inserted.DeleteAt(index)
		if err != nil {
			t.Fatalf("DeleteAt(%d) failed: %v", index, err)
		}
		mustCheck(t, restored)
		assertItems(t, restored, seq(0, 200))
	}
}

func TestDeleteOutOfRangeKeepsTree(t *testing.T) {
	tree := appendNums(t, newNumTree(t, 4, 2), 0, 5)
	for _, index := range []int{-1, 5, 100} {
		out, err := tree.DeleteAt(index)
		if !errors.Is(err, ErrIndexOutOfBounds) || out != tree {
			t.Fatalf("DeleteAt(%d): expected unchanged tree and ErrIndexOutOfBounds, got %v", index, err)
		}
	}
}

func TestSnapshotsArePersistent(t *testing.T) {
	tree := appendNums(t, newNumTree(t, 4, 2), 0, 100)
	snapshot := tree
	snapshotRoot := snapshot.Root()
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		var err error
		if r.Intn(2) == 0 && tree.Len() > 0 {
			tree, err = tree.DeleteAt(r.Intn(tree.Len()))
		} else {
			tree, err = tree.InsertAt(r.Intn(tree.Len()+1), num(1000+i))
		}
		if err != nil {
			t.Fatalf("edit %d failed: %v", i, err)
		}
	}
	if snapshot.Root() != snapshotRoot {
		t.Fatalf("snapshot root identity changed")
	}
	mustCheck(t, snapshot)
	assertItems(t, snapshot, seq(0, 100))
}

func TestEditSharesUntouchedSubtrees(t *testing.T) {
	tree := appendNums(t, newNumTree(t, 4, 2), 0, 100)
	edited, err := tree.InsertAt(tree.Len(), 100)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if tree.Root() == edited.Root() {
		t.Fatalf("expected a new root after edit")
	}
	if leftmostLeaf(tree.Root()) != leftmostLeaf(edited.Root()) {
		t.Fatalf("expected leftmost leaf to be shared after appending")
	}
}

func TestHeightChangesOnlyAtRoot(t *testing.T) {
	tree := newNumTree(t, 4, 2)
	height := tree.Height()
	var err error
	for i := 0; i < 300; i++ {
		tree, err = tree.InsertAt(tree.Len()/2, num(i))
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		if h := tree.Height(); h != height {
			if h != height+1 {
				t.Fatalf("height jumped from %d to %d", height, h)
			}
			if h > 1 && tree.Root().Len() != 2 {
				t.Fatalf("new root after split has %d children, want 2", tree.Root().Len())
			}
			height = h
		}
		depths := map[int]int{}
		leafDepths(tree.Root(), 0, depths)
		if len(depths) != 1 {
			t.Fatalf("leaves at different depths: %v", depths)
		}
	}
	for tree.Len() > 0 {
		tree, err = tree.DeleteAt(tree.Len() / 2)
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if h := tree.Height(); h != height {
			if h != height-1 {
				t.Fatalf("height dropped from %d to %d", height, h)
			}
			height = h
		}
	}
	if height != 0 {
		t.Fatalf("expected height 0 after deleting everything, got %d", height)
	}
}

func TestRandomizedEditsMatchModel(t *testing.T) {
	shapes := [][2]int{{4, 2}, {4, 3}, {5, 2}, {6, 6}, {0, 0}}
	for _, shape := range shapes {
		r := rand.New(rand.NewSource(int64(shape[0]*100 + shape[1])))
		tree := newNumTree(t, shape[0], shape[1])
		var model []num
		next := 0
		for step := 0; step < 1500; step++ {
			var err error
			switch op := r.Intn(10); {
			case op < 5 || len(model) == 0:
				index := r.Intn(len(model) + 1)
				tree, err = tree.InsertAt(index, num(next))
				model = insertAt(model, index, num(next))
				next++
			case op < 8:
				index := r.Intn(len(model))
				tree, err = tree.DeleteAt(index)
				model = removeRange(model, index, index+1)
			case op < 9:
				index := r.Intn(len(model) + 1)
				count := r.Intn(len(model) - index + 1)
				tree, err = tree.DeleteRange(index, count)
				model = removeRange(model, index, index+count)
			default:
				index := r.Intn(len(model) + 1)
				batch := seq(next, next+r.Intn(40))
				next += len(batch)
				tree, err = tree.InsertAt(index, batch...)
				model = insertAt(model, index, batch...)
			}
			if err != nil {
				t.Fatalf("shape %v step %d: %v", shape, step, err)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("shape %v step %d: %v", shape, step, err)
			}
		}
		assertItems(t, tree, model)
	}
}

func TestFromItems(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 12, 13, 100, 1000} {
		tree, err := FromItems(Config[numSummary]{Monoid: numMonoid{}, Degree: 4, LeafCapacity: 3}, seq(0, n)...)
		if err != nil {
			t.Fatalf("FromItems(%d) failed: %v", n, err)
		}
		mustCheck(t, tree)
		assertItems(t, tree, seq(0, n))
	}
}

func TestIterators(t *testing.T) {
	tree := appendNums(t, newNumTree(t, 4, 2), 0, 50)
	for i, item := range tree.All() {
		if item != num(i) {
			t.Fatalf("All() yielded %d at %d", item, i)
		}
	}
	visited := 0
	tree.ForEachItem(func(num) bool {
		visited++
		return visited < 10
	})
	if visited != 10 {
		t.Fatalf("expected ForEachItem to stop after 10 items, visited %d", visited)
	}
}
