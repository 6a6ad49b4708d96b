// Package ndgrid provides flat, row-major n-dimensional grids and the
// neighborhood topology used by flood-style algorithms.
//
// What:
//
//   - Grid[T] wraps a caller-owned []T buffer with a shape, giving O(1)
//     linear-index ↔ coordinate conversion and bounds checks.
//   - Connectivity describes the neighbor offsets of a pixel: Face
//     (the 2·d axis-aligned offsets) or Full (all 3^d−1 non-zero offsets),
//     with optional per-axis physical spacing.
//
// Why:
//
//   - Watershed flooding, minima detection and related morphological
//     operators all need the same coordinate arithmetic and neighbor
//     enumeration; centralizing it keeps the algorithms free of index math.
//
// Complexity:
//
//   - Index/Coordinate:     O(d)       (d = number of dimensions).
//   - AppendNeighbors:      O(k·d)     (k = Degree(), 2·d or 3^d−1).
//   - NewConnectivity:      O(k·d) precomputation, done once per run.
//
// Options:
//
//   - Mode: Face (orthogonal neighbors only) or Full (includes diagonals).
//   - WithSpacing: per-axis physical spacing used by EffectiveDistance.
//
// Errors:
//
//   - ErrZeroDimension:     dimension < 1.
//   - ErrDimensionLimit:    dimension > MaxDim.
//   - ErrBadMode:           unknown connectivity mode.
//   - ErrBadSpacing:        spacing length mismatch or non-positive entry.
//   - ErrEmptyShape:        grid shape with no axes or a non-positive extent.
//   - ErrLengthMismatch:    backing slice length does not match the shape.
//   - ErrDimensionMismatch: coordinate or connectivity dimensionality differs
//     from the grid's.
package ndgrid
