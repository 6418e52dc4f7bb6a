package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index or an
	// unreachable seek target.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrInvalidDimension signals an invalid or missing dimension.
	ErrInvalidDimension = errors.New("btree: invalid dimension")
	// ErrIncompatibleTrees signals an attempt to concatenate trees with
	// different fanout configurations.
	ErrIncompatibleTrees = errors.New("btree: incompatible trees")
	// ErrInvariantViolation is reported by Check for a structurally broken tree.
	ErrInvariantViolation = errors.New("btree: invariant violation")
)
