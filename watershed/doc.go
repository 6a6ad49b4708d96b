// Package watershed implements the morphological watershed transform from
// markers over n-dimensional grids, after Chapter 9.2 of Pierre Soille's
// "Morphological Image Analysis: Principles and Applications" (2nd ed.).
//
// What:
//
//   - FromMarkers floods a read-only elevation surface outward from the
//     non-background pixels of a marker image, processing pixels in
//     non-decreasing elevation order with FIFO tie-breaking, and assigns
//     every reachable pixel the label of the flood that claims it.
//   - Where two differently labeled floods collide, the pixel becomes a
//     background "watershed line" (default) or is claimed by the
//     first-arriving flood (MarkWatershedLine = false).
//   - Watershed is the unmarked variant: it seeds itself by labeling the
//     regional minima of the elevation surface (see package minima).
//   - Converge is an outer driver re-flooding against caller-refreshed
//     markers until the labeling reaches a fixed point.
//
// Why:
//
//   - Image segmentation: split touching objects along gradient ridges.
//   - Basin analysis on any ordered scalar field (1-D signals to 3-D
//     volumes) with caller-chosen seeds.
//
// Complexity:
//
//   - FromMarkers: O(N·k·log N) time, O(N + Q) memory, where N is the cell
//     count, k the connectivity degree and Q ≤ N the queue population
//     (every pixel is enqueued at most once).
//
// Determinism:
//
//   - Seeds are enumerated in raster order and equal-elevation entries
//     drain first-in-first-out, so two invocations with identical inputs
//     produce bit-identical outputs.
//
// Options:
//
//   - MarkWatershedLine: draw background pixels where floods meet
//     (default true; false trades the line for first-arrival claiming).
//   - Background: the reserved non-region label (default: zero value).
//   - UseSpacing: use the connectivity's per-axis spacing as a secondary,
//     distance-based ordering key between equal elevations.
//
// Errors:
//
//   - ErrNilGrid:          elevation or marker grid is nil.
//   - ErrNilConnectivity:  connectivity descriptor is nil.
//   - ErrShapeMismatch:    elevation and marker shapes differ.
//   - ErrDimensionMismatch: connectivity dimensionality differs from the grids'.
//   - ErrNoMarkers:        no non-background marker pixel to flood from.
//   - ErrBadBackground:    unmarked variant called with a non-zero background.
//   - ErrBadIterationCap / ErrNotConverged: convergence driver misuse/outcome.
//
// All validation happens before any work; a call either fails up front or
// runs to completion. Pixels in basins not covered by any marker keep the
// background value in the output — a documented outcome, not an error.
package watershed
