package btree

import "fmt"

// SummarizedItem ties a leaf item to its summary type at compile time.
//
// Summary must be pure: it depends only on the item's value.
type SummarizedItem[S any] interface {
	Summary() S
}

// SummaryMonoid defines how summaries are aggregated up the tree.
//
// For summaries s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type SummaryMonoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Dimension projects summaries onto a monotonic, seekable measure K.
//
// Add accumulates a summary into a running value, Compare orders a running
// value against a seek target (-1, 0, +1).
type Dimension[S any, K any] interface {
	Zero() K
	Add(acc K, summary S) K
	Compare(acc K, target K) int
}

// --- Trivial summary -------------------------------------------------------

// Unit is the empty summary for trees which only need positional access.
type Unit struct{}

// UnitMonoid aggregates Unit summaries.
type UnitMonoid struct{}

func (UnitMonoid) Zero() Unit         { return Unit{} }
func (UnitMonoid) Add(_, _ Unit) Unit { return Unit{} }

// Plain wraps an arbitrary value as an item with a Unit summary.
type Plain[T any] struct {
	Value T
}

// Summary returns Unit.
func (Plain[T]) Summary() Unit { return Unit{} }

func (p Plain[T]) String() string {
	return fmt.Sprint(p.Value)
}

// --- Counting summary ------------------------------------------------------

// Count is a summary counting weighted items. Items which simply want to be
// counted return Count(1).
type Count uint64

// CountMonoid aggregates Count summaries.
type CountMonoid struct{}

func (CountMonoid) Zero() Count                 { return 0 }
func (CountMonoid) Add(left, right Count) Count { return left + right }

// CountDimension seeks by accumulated Count.
type CountDimension struct{}

func (CountDimension) Zero() uint64 { return 0 }

func (CountDimension) Add(acc uint64, summary Count) uint64 {
	return acc + uint64(summary)
}

func (CountDimension) Compare(acc uint64, target uint64) int {
	return CompareUint64(acc, target)
}

// CompareUint64 is a three-way comparison, handy for implementing Dimension.Compare.
func CompareUint64(acc, target uint64) int {
	switch {
	case acc < target:
		return -1
	case acc > target:
		return 1
	default:
		return 0
	}
}
