package ndgrid

// Grid is a flat, row-major n-dimensional array view over a caller-owned
// buffer. The last axis varies fastest; Shape and strides are fixed at
// construction. The backing slice is borrowed, not copied, so a Grid is a
// zero-copy view for the duration of one algorithm invocation.
type Grid[T any] struct {
	shape   []int
	strides []int
	data    []T
}

// New allocates a zero-valued grid with the given shape.
// Returns ErrEmptyShape if shape has no axes or a non-positive extent,
// ErrDimensionLimit if it has more than MaxDim axes.
// Complexity: O(len(data)) for the allocation.
func New[T any](shape ...int) (*Grid[T], error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	return wrap(make([]T, n), shape), nil
}

// FromSlice wraps an existing row-major buffer without copying.
// Returns ErrLengthMismatch if len(data) differs from the shape product.
// Mutations through the grid are visible in data and vice versa.
func FromSlice[T any](data []T, shape ...int) (*Grid[T], error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, ErrLengthMismatch
	}
	return wrap(data, shape), nil
}

// From2D builds a 2-D grid (shape = rows×cols) by flattening a rectangular
// [][]T. The input is copied. Returns ErrEmptyShape for empty input,
// ErrLengthMismatch if any row length differs from the first.
func From2D[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyShape
	}
	h, w := len(rows), len(rows[0])
	data := make([]T, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrLengthMismatch
		}
		data = append(data, row...)
	}
	return wrap(data, []int{h, w}), nil
}

// checkShape validates a shape and returns the total element count.
func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrEmptyShape
	}
	if len(shape) > MaxDim {
		return 0, ErrDimensionLimit
	}
	n := 1
	for _, e := range shape {
		if e < 1 {
			return 0, ErrEmptyShape
		}
		n *= e
	}
	return n, nil
}

// wrap assembles a Grid from a validated shape and buffer, copying the
// shape and precomputing row-major strides (last axis fastest).
func wrap[T any](data []T, shape []int) *Grid[T] {
	d := len(shape)
	sh := make([]int, d)
	copy(sh, shape)
	st := make([]int, d)
	st[d-1] = 1
	for i := d - 2; i >= 0; i-- {
		st[i] = st[i+1] * sh[i+1]
	}
	return &Grid[T]{shape: sh, strides: st, data: data}
}

// Dim returns the number of axes.
func (g *Grid[T]) Dim() int { return len(g.shape) }

// Len returns the total number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Shape returns a copy of the grid's extents.
func (g *Grid[T]) Shape() []int {
	sh := make([]int, len(g.shape))
	copy(sh, g.shape)
	return sh
}

// Strides returns a copy of the row-major strides.
func (g *Grid[T]) Strides() []int {
	st := make([]int, len(g.strides))
	copy(st, g.strides)
	return st
}

// Data exposes the backing slice so callers can read or write cells in bulk.
func (g *Grid[T]) Data() []T { return g.data }

// At returns the cell value at linear index idx.
// Complexity: O(1).
func (g *Grid[T]) At(idx int) T { return g.data[idx] }

// Set stores v at linear index idx.
// Complexity: O(1).
func (g *Grid[T]) Set(idx int, v T) { g.data[idx] = v }

// Index maps a coordinate tuple to its row-major linear index.
// The coordinate must be in bounds; use InBounds to check first.
// Complexity: O(d).
func (g *Grid[T]) Index(coord []int) int {
	idx := 0
	for a, c := range coord {
		idx += c * g.strides[a]
	}
	return idx
}

// Coordinate converts a linear index back to a coordinate tuple, writing
// into buf when it has the right length (avoiding allocation in hot loops).
// Complexity: O(d).
func (g *Grid[T]) Coordinate(idx int, buf []int) []int {
	if len(buf) != len(g.shape) {
		buf = make([]int, len(g.shape))
	}
	for a := 0; a < len(g.shape); a++ {
		buf[a] = idx / g.strides[a]
		idx -= buf[a] * g.strides[a]
	}
	return buf
}

// InBounds reports whether coord lies within the grid boundaries.
// A coordinate of the wrong dimensionality is out of bounds.
// Complexity: O(d).
func (g *Grid[T]) InBounds(coord []int) bool {
	if len(coord) != len(g.shape) {
		return false
	}
	for a, c := range coord {
		if c < 0 || c >= g.shape[a] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid (fresh backing slice).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return wrap(data, g.shape)
}

// AppendNeighbors appends the linear indices of all in-bounds neighbors of
// coord under c to out and returns the extended slice. Out-of-domain
// neighbors are omitted; there is no wraparound or implicit padding.
// Returns ErrDimensionMismatch if c or coord disagree with the grid's
// dimensionality.
// Complexity: O(k·d), k = c.Degree().
func (g *Grid[T]) AppendNeighbors(c *Connectivity, coord []int, out []int) ([]int, error) {
	if c.Dim() != len(g.shape) || len(coord) != len(g.shape) {
		return out, ErrDimensionMismatch
	}
	for _, off := range c.offsets {
		idx, ok := 0, true
		for a, o := range off {
			nc := coord[a] + o
			if nc < 0 || nc >= g.shape[a] {
				ok = false
				break
			}
			idx += nc * g.strides[a]
		}
		if ok {
			out = append(out, idx)
		}
	}
	return out, nil
}

// SameShape reports whether two grids (possibly of different cell types)
// have identical dimensionality and extents.
func SameShape[A, B any](a *Grid[A], b *Grid[B]) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i, e := range a.shape {
		if b.shape[i] != e {
			return false
		}
	}
	return true
}
