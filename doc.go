// Package watergrid is an in-memory toolkit for marker-driven morphological
// watershed segmentation over n-dimensional grids.
//
// 🚀 What is watergrid?
//
//	A small, focused library implementing the watershed transform from
//	markers, as described in Chapter 9.2 of Pierre Soille's "Morphological
//	Image Analysis: Principles and Applications" (2nd ed., Springer, 2003):
//		• ndgrid/    — flat row-major n-d grids + face/full connectivity
//		• watershed/ — ordered flood from markers, watershed lines,
//		               unmarked (minima-seeded) variant, convergence driver
//		• minima/    — connectivity-aware regional minima detection
//
// ✨ Why choose watergrid?
//
//   - Deterministic – raster-order seeding and FIFO tie-breaks give
//     bit-identical results across runs
//   - Pure Go – no cgo, no image decoding, no hidden deps; callers bring
//     their own elevation (typically a gradient magnitude) and markers
//   - Dimension-agnostic – the same flood runs on 1-D signals, 2-D images
//     and 3-D volumes
//
// Quick ASCII example (1-D valley, seeds at both ends):
//
//	elevation  5 4 3 2 1 2 3 4 5
//	markers    1 . . . . . . . 2
//	result     1 1 1 1 1 2 2 2 2   (watershed line off)
//	result     1 1 1 1 0 2 2 2 2   (watershed line on)
//
// Dive into the package docs of ndgrid, watershed and minima for full
// contracts, complexity notes and examples.
package watergrid
