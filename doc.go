// Package lvgrid is a compact toolkit for regular N-dimensional lattices —
// the grids behind images, volumes, and higher-dimensional arrays.
//
// 🚀 What is lvgrid?
//
//	A small, deterministic library that precomputes, once per dimensionality,
//	everything a scan-order algorithm needs to know about grid adjacency:
//		• Border codes: a 2-bits-per-dimension classification of a cell's position
//		• Canonical neighbor offsets: stride-sorted, point-symmetric enumeration
//		• Existence tables: which neighbors survive at every border configuration
//		• Causal/anticausal splits: scan-order predecessors vs. successors
//		• Linear-offset projections: flat memory displacements for real strides
//
// ✨ Why choose lvgrid?
//
//   - Hot-path friendly – per-cell border logic collapses to one table lookup
//   - Deterministic – identical inputs always produce bit-identical tables
//   - Pure Go – no cgo, no hidden deps
//   - Dimension-agnostic – the same code serves 1D signals up to 15D lattices
//
// Under the hood, everything is organized under two subpackages:
//
//	coord/        — fixed-length integer vectors: coordinates, extents, strides
//	neighborhood/ — border classification & the precomputed neighbor tables
//
// Quick ASCII example (2D, direct neighborhood):
//
//	· ↑ ·
//	← x →        a cell and its 4 axis-aligned neighbors;
//	· ↓ ·        on a border, the table tells you which arrows survive.
//
// Flood fills, distance transforms, labeling and morphological filters are
// deliberately out of scope: lvgrid produces the metadata such algorithms
// consume, and nothing else.
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
