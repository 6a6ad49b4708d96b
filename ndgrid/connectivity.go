package ndgrid

import (
	"fmt"
	"math"
)

// Connectivity is an immutable neighbor-topology descriptor: the set of
// relative offset vectors defining "neighbor" for a pixel, precomputed in a
// fixed deterministic order, plus optional per-axis physical spacing.
// Construct once before a run and share freely; it is never mutated.
type Connectivity struct {
	dim     int
	mode    Mode
	offsets [][]int
	spacing []float64
	dist    []float64 // Euclidean step length per offset under spacing
}

// NewConnectivity builds a descriptor for the given dimensionality.
// Face yields the 2·d axis-aligned offsets, Full all 3^d−1 non-zero offsets
// in lexicographic order (each component −1, 0 or +1).
// Returns ErrZeroDimension for dim < 1, ErrDimensionLimit for dim > MaxDim,
// ErrBadMode for an unknown mode.
// Complexity: O(k·d), k = Degree().
func NewConnectivity(dim int, mode Mode) (*Connectivity, error) {
	if dim < 1 {
		return nil, ErrZeroDimension
	}
	if dim > MaxDim {
		return nil, fmt.Errorf("%w: %d > %d", ErrDimensionLimit, dim, MaxDim)
	}
	var offsets [][]int
	switch mode {
	case Face:
		offsets = faceOffsets(dim)
	case Full:
		offsets = fullOffsets(dim)
	default:
		return nil, ErrBadMode
	}
	c := &Connectivity{dim: dim, mode: mode, offsets: offsets}
	c.dist = stepLengths(offsets, nil)
	return c, nil
}

// faceOffsets enumerates the 2·d axis-aligned unit offsets:
// (−1 on axis 0, +1 on axis 0, −1 on axis 1, …).
func faceOffsets(dim int) [][]int {
	offsets := make([][]int, 0, 2*dim)
	for a := 0; a < dim; a++ {
		for _, s := range [2]int{-1, 1} {
			off := make([]int, dim)
			off[a] = s
			offsets = append(offsets, off)
		}
	}
	return offsets
}

// fullOffsets enumerates all 3^d−1 non-zero offsets in lexicographic order,
// stepping each component through −1, 0, +1 like an odometer.
func fullOffsets(dim int) [][]int {
	total := 1
	for a := 0; a < dim; a++ {
		total *= 3
	}
	offsets := make([][]int, 0, total-1)
	cur := make([]int, dim)
	for i := range cur {
		cur[i] = -1
	}
	for {
		zero := true
		for _, v := range cur {
			if v != 0 {
				zero = false
				break
			}
		}
		if !zero {
			off := make([]int, dim)
			copy(off, cur)
			offsets = append(offsets, off)
		}
		// advance odometer from the last axis
		a := dim - 1
		for ; a >= 0; a-- {
			if cur[a] < 1 {
				cur[a]++
				break
			}
			cur[a] = -1
		}
		if a < 0 {
			return offsets
		}
	}
}

// stepLengths computes the Euclidean length of each offset under the given
// spacing (unit spacing when nil).
func stepLengths(offsets [][]int, spacing []float64) []float64 {
	dist := make([]float64, len(offsets))
	for i, off := range offsets {
		sum := 0.0
		for a, o := range off {
			s := 1.0
			if spacing != nil {
				s = spacing[a]
			}
			d := float64(o) * s
			sum += d * d
		}
		dist[i] = math.Sqrt(sum)
	}
	return dist
}

// WithSpacing returns a copy of c carrying per-axis physical spacing, used
// by EffectiveDistance for distance-based secondary ordering. The receiver
// is left untouched. Returns ErrBadSpacing if len(spacing) != Dim() or any
// entry is not strictly positive.
func (c *Connectivity) WithSpacing(spacing []float64) (*Connectivity, error) {
	if len(spacing) != c.dim {
		return nil, fmt.Errorf("%w: got %d axes, want %d", ErrBadSpacing, len(spacing), c.dim)
	}
	for _, s := range spacing {
		if s <= 0 {
			return nil, ErrBadSpacing
		}
	}
	sp := make([]float64, c.dim)
	copy(sp, spacing)
	return &Connectivity{
		dim:     c.dim,
		mode:    c.mode,
		offsets: c.offsets,
		spacing: sp,
		dist:    stepLengths(c.offsets, sp),
	}, nil
}

// Dim returns the dimensionality the descriptor was built for.
func (c *Connectivity) Dim() int { return c.dim }

// Mode returns the connectivity mode (Face or Full).
func (c *Connectivity) Mode() Mode { return c.mode }

// Degree returns the number of offsets: 2·d for Face, 3^d−1 for Full.
func (c *Connectivity) Degree() int { return len(c.offsets) }

// Offsets returns the precomputed offset vectors. The returned slices are
// shared; callers must treat them as read-only.
func (c *Connectivity) Offsets() [][]int { return c.offsets }

// Spacing returns a copy of the per-axis spacing, or nil when unit spacing
// is in effect.
func (c *Connectivity) Spacing() []float64 {
	if c.spacing == nil {
		return nil
	}
	sp := make([]float64, len(c.spacing))
	copy(sp, c.spacing)
	return sp
}

// EffectiveDistance returns the physical step length of offset i: its
// Euclidean norm under the configured spacing, or under unit spacing when
// none was set. Complexity: O(1) (precomputed).
func (c *Connectivity) EffectiveDistance(i int) float64 { return c.dist[i] }
