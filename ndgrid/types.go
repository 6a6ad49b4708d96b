// Package ndgrid defines core types and sentinel errors for n-dimensional
// grid traversal.
package ndgrid

import (
	"errors"
)

// MaxDim bounds the supported dimensionality. Full connectivity enumerates
// 3^d−1 offsets, so the cap keeps precomputation bounded (3^8−1 = 6560).
const MaxDim = 8

// Sentinel errors for ndgrid operations.
var (
	// ErrZeroDimension indicates a connectivity dimension below 1.
	ErrZeroDimension = errors.New("ndgrid: dimension must be at least 1")
	// ErrDimensionLimit indicates a dimension above MaxDim.
	ErrDimensionLimit = errors.New("ndgrid: dimension exceeds MaxDim")
	// ErrBadMode indicates an unknown connectivity mode.
	ErrBadMode = errors.New("ndgrid: unknown connectivity mode")
	// ErrBadSpacing indicates a spacing slice of wrong length or with a
	// non-positive entry.
	ErrBadSpacing = errors.New("ndgrid: spacing must match dimension and be positive")
	// ErrEmptyShape indicates a grid shape with no axes or a non-positive extent.
	ErrEmptyShape = errors.New("ndgrid: shape must have at least one axis, all extents positive")
	// ErrLengthMismatch indicates a backing slice whose length differs from
	// the product of the shape extents.
	ErrLengthMismatch = errors.New("ndgrid: data length does not match shape")
	// ErrDimensionMismatch indicates a coordinate or connectivity whose
	// dimensionality differs from the grid's.
	ErrDimensionMismatch = errors.New("ndgrid: dimensionality mismatch")
)

// Mode selects neighbor connectivity: axis-aligned faces only (Face) or
// faces, edges and vertices together (Full).
type Mode int

const (
	// Face uses the 2·d axis-aligned offsets (4-connectivity in 2-D).
	Face Mode = iota
	// Full uses all 3^d−1 non-zero offsets (8-connectivity in 2-D).
	Full
)
