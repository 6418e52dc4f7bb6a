package btree

import "fmt"

const (
	// DefaultDegree is the max fanout of internal nodes if none is configured.
	DefaultDegree = 12
	// MinDegree is the smallest supported internal fanout. Below it, a
	// non-root internal node could be left without a sibling to rebalance with.
	MinDegree = 4
	// MinLeafCapacity is the smallest supported leaf capacity.
	MinLeafCapacity = 2
	// MaxFanout caps both Degree and LeafCapacity.
	MaxFanout = 1024
)

// Config configures a B+ sum-tree.
type Config[S any] struct {
	// Monoid aggregates summaries up the tree. Required.
	Monoid SummaryMonoid[S]
	// Degree is the maximum number of children of an internal node.
	// Zero selects DefaultDegree.
	Degree int
	// LeafCapacity is the maximum number of items in a leaf.
	// Zero selects Degree.
	LeafCapacity int
}

func (cfg Config[S]) normalized() Config[S] {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	if cfg.LeafCapacity == 0 {
		cfg.LeafCapacity = cfg.Degree
	}
	return cfg
}

func (cfg Config[S]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Degree < MinDegree || cfg.Degree > MaxFanout {
		return fmt.Errorf("%w: degree %d not in [%d,%d]", ErrInvalidConfig,
			cfg.Degree, MinDegree, MaxFanout)
	}
	if cfg.LeafCapacity < MinLeafCapacity || cfg.LeafCapacity > MaxFanout {
		return fmt.Errorf("%w: leaf capacity %d not in [%d,%d]", ErrInvalidConfig,
			cfg.LeafCapacity, MinLeafCapacity, MaxFanout)
	}
	return nil
}

// MinChildren is the lower occupancy bound of non-root internal nodes.
func (cfg Config[S]) MinChildren() int {
	return cfg.normalized().Degree / 2
}

// MinLeafItems is the lower occupancy bound of non-root leaves.
func (cfg Config[S]) MinLeafItems() int {
	return cfg.normalized().LeafCapacity / 2
}

func (cfg Config[S]) sameShape(other Config[S]) bool {
	a, b := cfg.normalized(), other.normalized()
	return a.Degree == b.Degree && a.LeafCapacity == b.LeafCapacity
}
