// Package minima detects and labels the regional minima of an n-dimensional
// elevation surface under a configurable connectivity.
//
// What:
//
//   - A regional minimum is a connected plateau (cells of equal elevation,
//     connected under the given topology) with no neighbor of strictly
//     lower elevation.
//   - Label assigns each minimum a unique positive label, background 0,
//     producing exactly the marker image the watershed-from-markers core
//     consumes — this is the seeding side of the unmarked watershed.
//
// Why:
//
//   - The unmarked watershed transform floods from the minima of the
//     surface; anything else (gradient computation, thresholding) stays
//     with the caller.
//
// Determinism:
//
//   - Plateaus are discovered in raster order and labeled 1, 2, 3, … in
//     that order, so repeated runs yield identical marker images.
//
// Complexity:
//
//   - Label: O(N·k) time and O(N) memory, N cells, k connectivity degree.
//     Each cell joins exactly one plateau scan.
//
// Errors:
//
//   - ErrNilGrid:          elevation grid is nil.
//   - ErrNilConnectivity:  connectivity descriptor is nil.
//   - ndgrid.ErrDimensionMismatch: descriptor dimensionality differs from
//     the grid's.
package minima
