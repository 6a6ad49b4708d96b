// Package watershed defines configuration and sentinel errors for the
// watershed transform.
package watershed

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for watershed execution.
var (
	// ErrNilGrid indicates a nil elevation or marker grid.
	ErrNilGrid = errors.New("watershed: grid is nil")

	// ErrNilConnectivity indicates a nil connectivity descriptor.
	ErrNilConnectivity = errors.New("watershed: connectivity is nil")

	// ErrShapeMismatch indicates elevation and marker grids of differing
	// shape or dimensionality.
	ErrShapeMismatch = errors.New("watershed: elevation and marker shapes differ")

	// ErrDimensionMismatch indicates a connectivity descriptor built for a
	// different dimensionality than the input grids.
	ErrDimensionMismatch = errors.New("watershed: connectivity dimensionality differs from grids")

	// ErrNoMarkers indicates a marker image whose every pixel carries the
	// background value: there is nothing to flood from.
	ErrNoMarkers = errors.New("watershed: marker image contains no non-background label")

	// ErrBadBackground indicates the unmarked variant was configured with a
	// non-zero background; minima labeling reserves the zero value.
	ErrBadBackground = errors.New("watershed: unmarked variant requires the zero background value")

	// ErrBadIterationCap indicates a convergence cap below 1.
	ErrBadIterationCap = errors.New("watershed: iteration cap must be at least 1")

	// ErrNotConverged indicates the convergence driver exhausted its
	// iteration cap before reaching a fixed point.
	ErrNotConverged = errors.New("watershed: labeling did not converge within the iteration cap")
)

// Options configures a single watershed invocation. The zero value is not a
// useful default; start from DefaultOptions.
//
//   - MarkWatershedLine: when true (default), a pixel reachable from two or
//     more differently labeled floods becomes Background, drawing a
//     one-pixel-wide watershed line. When false, the first-arriving flood
//     claims the pixel, which is cheaper and leaves no background except
//     genuinely unreachable cells.
//   - Background: the reserved label for "no region" / watershed line /
//     unreached. Never assigned to a region and never overwritten.
//   - UseSpacing: when true, the accumulated physical flood distance (per
//     the connectivity's spacing) orders entries of equal elevation before
//     the FIFO tie-break. The primary key is always the elevation value.
type Options[L constraints.Integer] struct {
	MarkWatershedLine bool
	Background        L
	UseSpacing        bool
}

// DefaultOptions returns the canonical configuration: watershed lines on,
// zero background, spacing ignored.
func DefaultOptions[L constraints.Integer]() Options[L] {
	return Options[L]{
		MarkWatershedLine: true,
		Background:        0,
		UseSpacing:        false,
	}
}
